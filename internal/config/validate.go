// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

var validDrivers = map[string]bool{
	"sqlite": true, "bolt": true, "memory": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// OMDb
	if c.OMDb.BaseURL != "" {
		if u, err := url.Parse(c.OMDb.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("omdb.base_url: must be an absolute URL, got %q", c.OMDb.BaseURL))
		}
	}
	if c.OMDb.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("omdb.timeout: must not be negative, got %s", c.OMDb.Timeout))
	}
	if c.OMDb.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("omdb.requests_per_second: must not be negative, got %g", c.OMDb.RequestsPerSecond))
	}
	if c.OMDb.ResultsPerPage < 0 {
		errs = append(errs, fmt.Sprintf("omdb.results_per_page: must be positive, got %d", c.OMDb.ResultsPerPage))
	}

	// Storage
	if !validDrivers[c.Storage.Driver] {
		errs = append(errs, fmt.Sprintf("storage.driver: must be one of sqlite, bolt, memory; got %q", c.Storage.Driver))
	}
	if c.Storage.Driver != "memory" && c.Storage.Path == "" {
		errs = append(errs, "storage.path: required for persistent drivers")
	}

	// Cache
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must not be negative, got %s", c.Cache.TTL))
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, fmt.Sprintf("cache.max_entries: must be positive, got %d", c.Cache.MaxEntries))
	}
	if c.Cache.EvictCount < 0 || (c.Cache.MaxEntries > 0 && c.Cache.EvictCount >= c.Cache.MaxEntries) {
		errs = append(errs, fmt.Sprintf("cache.evict_count: must be between 1 and max_entries-1, got %d", c.Cache.EvictCount))
	}

	// Recent
	if c.Recent.Max < 0 {
		errs = append(errs, fmt.Sprintf("recent.max: must be positive, got %d", c.Recent.Max))
	}

	// Logging
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of text, json; got %q", c.Log.Format))
	}

	return errs
}
