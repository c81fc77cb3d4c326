package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the response cache",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop expired entries",
	Args:  cobra.NoArgs,
	RunE:  runCachePrune,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every entry",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cachePruneCmd, cacheClearCmd)
}

type cacheStatsOutput struct {
	Entries    int        `json:"entries"`
	Searches   int        `json:"searches"`
	Details    int        `json:"details"`
	Expired    int        `json:"expired"`
	MaxEntries int        `json:"max_entries"`
	TTL        string     `json:"ttl"`
	Oldest     *time.Time `json:"oldest,omitempty"`
	Newest     *time.Time `json:"newest,omitempty"`
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	s := a.Cache.Stats()
	o := cacheStatsOutput{
		Entries:    s.Entries,
		Searches:   s.Entries - s.Details,
		Details:    s.Details,
		Expired:    s.Expired,
		MaxEntries: a.Config.Cache.MaxEntries,
		TTL:        a.Config.Cache.TTL.String(),
	}
	if !s.Oldest.IsZero() {
		o.Oldest, o.Newest = &s.Oldest, &s.Newest
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, o)
	}

	fmt.Fprintf(out, "Entries:  %d / %d (%d searches, %d details)\n", o.Entries, o.MaxEntries, o.Searches, o.Details)
	fmt.Fprintf(out, "Expired:  %d (ttl %s)\n", o.Expired, o.TTL)
	if o.Oldest != nil {
		fmt.Fprintf(out, "Oldest:   %s\n", o.Oldest.Format(time.RFC3339))
		fmt.Fprintf(out, "Newest:   %s\n", o.Newest.Format(time.RFC3339))
	}
	return nil
}

func runCachePrune(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := a.Cache.Prune()
	if err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d expired entr%s\n", n, plural(n, "y", "ies"))
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	n := a.Cache.Len()
	if err := a.Cache.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entr%s\n", n, plural(n, "y", "ies"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
