package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/flicks/internal/app"
	"github.com/vmunix/flicks/internal/config"
	"github.com/vmunix/flicks/internal/logging"
)

// loadConfig resolves --config, environment overrides and command-line
// overrides into a validated configuration.
func loadConfig() (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("invalid configuration:\n%w", cfgErr)
		}
		return nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if ephemeral {
		cfg.Storage.Driver = "memory"
	}
	return cfg, nil
}

// openApp loads configuration, sets up logging and wires the services.
// The returned func releases everything.
func openApp(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With("command", cmd.CommandPath())

	a, err := app.New(cfg, logger)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := a.Close(); err != nil {
			logger.Warn("close failed", "error", err)
		}
		_ = logCloser.Close()
	}
	return a, cleanup, nil
}
