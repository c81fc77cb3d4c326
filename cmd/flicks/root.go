package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
	ephemeral  bool
)

var rootCmd = &cobra.Command{
	Use:   "flicks",
	Short: "Search OMDb for movies from the terminal",
	Long: `flicks - search OMDb for movies from the terminal

Run without a command to open the interactive browser. Searches and
details are cached locally; favorites and recent searches persist
between runs.`,
	SilenceUsage: true,
	RunE:         runTUICmd,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep cache, favorites and history in memory only")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("flicks {{.Version}}\n")
}
