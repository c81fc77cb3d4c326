// Package app wires configuration, storage and the OMDb client into the
// services shared by the CLI and the TUI.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/flicks/internal/cache"
	"github.com/vmunix/flicks/internal/config"
	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/recent"
	"github.com/vmunix/flicks/internal/search"
	"github.com/vmunix/flicks/internal/storage"
)

// App holds the wired services.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Blobs     storage.Blobs
	Bus       *events.Bus
	Cache     *cache.Cache
	Favorites *favorites.Store
	Recent    *recent.Store
	Client    *omdb.Client
	Searcher  *search.Searcher
}

type options struct {
	blobs storage.Blobs
	api   search.API
}

// Option configures New.
type Option func(*options)

// WithBlobs uses blobs instead of opening cfg.Storage.
func WithBlobs(b storage.Blobs) Option {
	return func(o *options) {
		o.blobs = b
	}
}

// WithAPI replaces the OMDb client used by the searcher (for testing).
func WithAPI(api search.API) Option {
	return func(o *options) {
		o.api = api
	}
}

// New opens storage and builds every service from cfg.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	blobs := o.blobs
	if blobs == nil {
		var err error
		blobs, err = storage.Open(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}
	logger.Debug("storage ready", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	bus := events.NewBus(logger.With("component", "bus"))

	a := &App{
		Config: cfg,
		Logger: logger,
		Blobs:  blobs,
		Bus:    bus,
		Cache: cache.New(blobs,
			cache.WithTTL(cfg.Cache.TTL),
			cache.WithLimits(cfg.Cache.MaxEntries, cfg.Cache.EvictCount),
			cache.WithLogger(logger.With("component", "cache")),
		),
		Favorites: favorites.New(blobs,
			favorites.WithBus(bus),
			favorites.WithLogger(logger.With("component", "favorites")),
		),
		Recent: recent.New(blobs,
			recent.WithMax(cfg.Recent.Max),
			recent.WithBus(bus),
			recent.WithLogger(logger.With("component", "recent")),
		),
		Client: omdb.NewClient(cfg.OMDb.APIKey,
			omdb.WithBaseURL(cfg.OMDb.BaseURL),
			omdb.WithTimeout(cfg.OMDb.Timeout),
			omdb.WithRateLimit(cfg.OMDb.RequestsPerSecond, cfg.OMDb.Burst),
			omdb.WithLogger(logger.With("component", "omdb")),
		),
	}

	var api search.API = a.Client
	if o.api != nil {
		api = o.api
	}
	a.Searcher = search.NewSearcher(api, a.Cache, a.Recent, a.Favorites,
		logger.With("component", "search"),
		search.WithResultsPerPage(cfg.OMDb.ResultsPerPage),
	)

	return a, nil
}

// Close shuts down the bus and releases storage.
func (a *App) Close() error {
	return errors.Join(a.Bus.Close(), a.Blobs.Close())
}
