package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/flicks/internal/omdb"
)

// mockServer is a fake OMDb endpoint with a fluent setup API.
// Unknown searches and ids answer the way OMDb does, in-band.
type mockServer struct {
	t        *testing.T
	server   *httptest.Server
	apiKey   string
	searches map[string]any
	movies   map[string]any
	handler  http.HandlerFunc
	hits     atomic.Int64
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{
		t:        t,
		searches: make(map[string]any),
		movies:   make(map[string]any),
	}
}

// ExpectAPIKey verifies the apikey parameter on every request.
func (m *mockServer) ExpectAPIKey(key string) *mockServer {
	m.apiKey = key
	return m
}

// Search answers s=query&page=page with v.
func (m *mockServer) Search(query string, page int, v any) *mockServer {
	m.searches[fmt.Sprintf("%s|%d", query, page)] = v
	return m
}

// Movie answers i=id with v.
func (m *mockServer) Movie(id string, v any) *mockServer {
	m.movies[id] = v
	return m
}

// Handler replaces the routing with h.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

// RespondError answers every request with an error status and message.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(message))
	}
	return m
}

// Hits returns the number of requests served.
func (m *mockServer) Hits() int {
	return int(m.hits.Load())
}

// Build creates the httptest.Server and closes it when the test ends.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.hits.Add(1)
		q := r.URL.Query()
		if m.apiKey != "" {
			assert.Equal(m.t, m.apiKey, q.Get("apikey"), "unexpected api key")
		}
		assert.Equal(m.t, http.MethodGet, r.Method, "unexpected request method")

		if m.handler != nil {
			m.handler(w, r)
			return
		}

		if id := q.Get("i"); id != "" {
			assert.Equal(m.t, "full", q.Get("plot"))
			if v, ok := m.movies[id]; ok {
				respondJSON(m.t, w, v)
				return
			}
			respondJSON(m.t, w, map[string]string{"Response": "False", "Error": "Incorrect IMDb ID."})
			return
		}

		page := q.Get("page")
		if page == "" {
			page = "1"
		}
		if v, ok := m.searches[q.Get("s")+"|"+page]; ok {
			respondJSON(m.t, w, v)
			return
		}
		respondJSON(m.t, w, map[string]string{"Response": "False", "Error": "Movie not found!"})
	})

	m.server = httptest.NewServer(handler)
	m.t.Cleanup(m.server.Close)
	return m.server
}

// respondJSON writes a JSON response with proper content-type header.
// Fails the test if JSON encoding fails instead of silently ignoring.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

// writeConfig writes a config pointing at baseURL with storage and logs in
// a temp dir, and returns its path.
func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := fmt.Sprintf(`[omdb]
api_key = "test-key"
base_url = %q
timeout = "5s"
requests_per_second = 100
burst = 10

[storage]
driver = "sqlite"
path = %q

[log]
level = "debug"
file = %q
`, baseURL+"/", filepath.Join(dir, "flicks.db"), filepath.Join(dir, "flicks.log"))

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCLI executes the root command with args and returns what it printed.
// Flag values are reset first so runs do not leak into each other.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	configPath, jsonOutput, logLevel, ephemeral = "", false, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func alienSearch() omdb.SearchResponse {
	return omdb.SearchResponse{
		Response: "True",
		Search: []omdb.Item{
			{ID: "tt0078748", Title: "Alien", Year: "1979", Type: "movie", Poster: "N/A"},
			{ID: "tt0090605", Title: "Aliens", Year: "1986", Type: "movie", Poster: "https://img.example/aliens.jpg"},
		},
		TotalResults: "25",
	}
}

func alienMovie() omdb.Movie {
	return omdb.Movie{
		ID:       "tt0078748",
		Title:    "Alien",
		Year:     "1979",
		Type:     "movie",
		Genre:    "Horror, Sci-Fi",
		Director: "Ridley Scott",
		Actors:   "Sigourney Weaver, Tom Skerritt",
		Runtime:  "117 min",
		Plot:     "The crew of a commercial spacecraft encounters a deadly lifeform.",
		Released: "22 Jun 1979",
		Language: "English",
		Poster:   "N/A",
		Ratings:  []omdb.Rating{{Source: "Internet Movie Database", Value: "8.5/10"}},
		Response: "True",
	}
}
