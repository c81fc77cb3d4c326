// internal/config/validate_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad driver", func(c *Config) { c.Storage.Driver = "redis" }, "storage.driver"},
		{"missing path", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"relative base url", func(c *Config) { c.OMDb.BaseURL = "omdbapi.com" }, "omdb.base_url"},
		{"negative timeout", func(c *Config) { c.OMDb.Timeout = -time.Second }, "omdb.timeout"},
		{"evict too large", func(c *Config) { c.Cache.EvictCount = c.Cache.MaxEntries }, "cache.evict_count"},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Minute }, "cache.ttl"},
		{"negative recent", func(c *Config) { c.Recent.Max = -1 }, "recent.max"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if assert.Len(t, errs, 1) {
				assert.Contains(t, errs[0], tt.field)
			}
		})
	}
}

func TestValidate_MemoryDriverNeedsNoPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = "memory"
	cfg.Storage.Path = ""
	assert.Empty(t, cfg.Validate())
}
