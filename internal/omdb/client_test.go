package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "alien", r.URL.Query().Get("s"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Search": [
				{"Title":"Alien","Year":"1979","imdbID":"tt0078748","Type":"movie","Poster":"https://example.com/alien.jpg"},
				{"Title":"Aliens","Year":"1986","imdbID":"tt0090605","Type":"movie","Poster":"N/A"}
			],
			"totalResults":"134",
			"Response":"True"
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	resp, err := client.Search(context.Background(), "alien", 2)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, 134, resp.Total())
	require.Len(t, resp.Search, 2)
	assert.Equal(t, "tt0078748", resp.Search[0].ID)
	assert.Equal(t, "N/A", resp.Search[1].Poster)
}

func TestClient_Search_ClampsPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"Search":[],"totalResults":"0","Response":"True"}`))
	}))
	defer server.Close()

	client := NewClient("k", WithBaseURL(server.URL+"/"))
	_, err := client.Search(context.Background(), "heat", 0)
	require.NoError(t, err)
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	resp, err := client.Search(context.Background(), "zzzzqqq", 1)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Movie not found!", apiErr.Message)
}

func TestClient_DecodesBodyOnNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL+"/"))

	_, err := client.Search(context.Background(), "alien", 1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid API key!", apiErr.Message)
}

func TestClient_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	_, err := client.Search(context.Background(), "alien", 1)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "decode failures are not API errors")
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	_, err := client.Movie(context.Background(), "tt0078748")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
}

func TestClient_NoAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient("", WithBaseURL(server.URL+"/"))

	_, err := client.Search(context.Background(), "alien", 1)
	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.False(t, called, "no request without a key")
}

func TestClient_TimeoutOptions(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewClient("k")
		assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
	})

	t.Run("caller client is not modified", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Minute}
		for _, c := range []*Client{
			NewClient("k", WithHTTPClient(hc), WithTimeout(3*time.Second)),
			NewClient("k", WithTimeout(3*time.Second), WithHTTPClient(hc)),
		} {
			assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
			assert.NotSame(t, hc, c.httpClient)
		}
		assert.Equal(t, time.Minute, hc.Timeout)
	})

	t.Run("caller client kept without timeout", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Minute}
		c := NewClient("k", WithHTTPClient(hc))
		assert.Same(t, hc, c.httpClient)
	})

	t.Run("nil client", func(t *testing.T) {
		var c *Client
		require.NotPanics(t, func() {
			c = NewClient("k", WithHTTPClient(nil), WithTimeout(2*time.Second))
		})
		require.NotNil(t, c.httpClient)
		assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
	})
}

func TestClient_Movie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tt0078748", r.URL.Query().Get("i"))
		assert.Equal(t, "full", r.URL.Query().Get("plot"))

		_ = json.NewEncoder(w).Encode(Movie{
			Title:    "Alien",
			Year:     "1979",
			Director: "Ridley Scott",
			Ratings:  []Rating{{Source: "Internet Movie Database", Value: "8.5/10"}},
			ID:       "tt0078748",
			Type:     "movie",
			Response: "True",
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	movie, err := client.Movie(context.Background(), "tt0078748")
	require.NoError(t, err)
	assert.Equal(t, "Ridley Scott", movie.Director)
	require.Len(t, movie.Ratings, 1)
	assert.Equal(t, Item{ID: "tt0078748", Title: "Alien", Year: "1979", Type: "movie"}, movie.Item())
}

func TestClient_Movie_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"))

	movie, err := client.Movie(context.Background(), "tt0")
	assert.Nil(t, movie)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Incorrect IMDb ID.", apiErr.Message)
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Search":[],"totalResults":"0","Response":"True"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL+"/"), WithRateLimit(0.001, 1))

	_, err := client.Search(context.Background(), "a", 1)
	require.NoError(t, err, "first request uses the burst token")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Search(ctx, "b", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestSearchResponse_Total(t *testing.T) {
	assert.Equal(t, 0, (&SearchResponse{}).Total())
	assert.Equal(t, 0, (&SearchResponse{TotalResults: "lots"}).Total())
	assert.Equal(t, 42, (&SearchResponse{TotalResults: " 42 "}).Total())
}
