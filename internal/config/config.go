// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	OMDb    OMDbConfig    `toml:"omdb"`
	Storage StorageConfig `toml:"storage"`
	Cache   CacheConfig   `toml:"cache"`
	Recent  RecentConfig  `toml:"recent"`
	Log     LogConfig     `toml:"log"`
}

type OMDbConfig struct {
	APIKey            string        `toml:"api_key"`
	BaseURL           string        `toml:"base_url"`
	Timeout           time.Duration `toml:"timeout"`
	RequestsPerSecond float64       `toml:"requests_per_second"`
	Burst             int           `toml:"burst"`
	ResultsPerPage    int           `toml:"results_per_page"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // sqlite, bolt or memory
	Path   string `toml:"path"`
}

type CacheConfig struct {
	TTL        time.Duration `toml:"ttl"`
	MaxEntries int           `toml:"max_entries"`
	EvictCount int           `toml:"evict_count"`
}

type RecentConfig struct {
	Max int `toml:"max"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

const (
	DefaultBaseURL        = "https://www.omdbapi.com/"
	DefaultResultsPerPage = 10
	DefaultCacheTTL       = 24 * time.Hour
	DefaultMaxEntries     = 120
	DefaultEvictCount     = 40
	DefaultRecentMax      = 8
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
// Unresolved environment variables and validation failures are reported
// together as an *Error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}

	return &cfg, nil
}

// LoadOrDefault loads path when set, otherwise discovers a config file and
// falls back to defaults when none exists.
func LoadOrDefault(path string) (*Config, string, error) {
	if path == "" {
		found, err := Discover()
		if err != nil {
			cfg := Default()
			cfg.applyEnvOverrides()
			return cfg, "", nil
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("FLICKS_OMDB_API_KEY"); key != "" {
		c.OMDb.APIKey = key
	}
}

func (c *Config) applyDefaults() {
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = DefaultBaseURL
	}
	if c.OMDb.Timeout == 0 {
		c.OMDb.Timeout = 10 * time.Second
	}
	if c.OMDb.RequestsPerSecond == 0 {
		c.OMDb.RequestsPerSecond = 5
	}
	if c.OMDb.Burst == 0 {
		c.OMDb.Burst = 5
	}
	if c.OMDb.ResultsPerPage == 0 {
		c.OMDb.ResultsPerPage = DefaultResultsPerPage
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(DataDir(), "flicks.db")
	}
	c.Storage.Path = ExpandHome(c.Storage.Path)
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.MaxEntries == 0 {
		c.Cache.MaxEntries = DefaultMaxEntries
	}
	if c.Cache.EvictCount == 0 {
		c.Cache.EvictCount = DefaultEvictCount
	}
	if c.Recent.Max == 0 {
		c.Recent.Max = DefaultRecentMax
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(DataDir(), "flicks.log")
	}
	c.Log.File = ExpandHome(c.Log.File)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references outside comments and
// returns the names of variables that could not be resolved.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	resolve := func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		if ok && value != "" {
			return value
		}

		switch op {
		case ":-":
			return arg
		case ":?":
			if !seen[name] {
				seen[name] = true
				missing = append(missing, fmt.Sprintf("%s (%s)", name, arg))
			}
			return match
		}

		if ok {
			return value
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match // Leave unchanged if not found
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		code, comment := line, ""
		if at := commentStart(line); at >= 0 {
			code, comment = line[:at], line[at:]
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(code, resolve) + comment
	}

	return strings.Join(lines, "\n"), missing
}

// commentStart returns the index of the first # outside a quoted string,
// or -1 when the line has no comment.
func commentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return i
		}
	}
	return -1
}
