package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/flicks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().Bool("from-current", false, "Write the resolved configuration instead of the commented template")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	key := "(not set)"
	if cfg.OMDb.APIKey != "" {
		key = "(set)"
	}

	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  OMDb:     %s (api key %s, timeout %s)\n", cfg.OMDb.BaseURL, key, cfg.OMDb.Timeout)
	fmt.Fprintf(w, "  Limits:   %g req/s, burst %d\n", cfg.OMDb.RequestsPerSecond, cfg.OMDb.Burst)
	fmt.Fprintf(w, "  Storage:  %s %s\n", cfg.Storage.Driver, cfg.Storage.Path)
	fmt.Fprintf(w, "  Cache:    ttl %s, %d entries (evict %d)\n", cfg.Cache.TTL, cfg.Cache.MaxEntries, cfg.Cache.EvictCount)
	fmt.Fprintf(w, "  Recent:   %d\n", cfg.Recent.Max)
	fmt.Fprintf(w, "  Log:      %s %s (%s)\n", cfg.Log.Level, cfg.Log.File, cfg.Log.Format)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	fromCurrent, _ := cmd.Flags().GetBool("from-current")

	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if fromCurrent {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Write(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Set OMDB_API_KEY or edit api_key to start searching.")
	return nil
}
