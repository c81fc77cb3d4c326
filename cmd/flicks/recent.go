package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show or clear recent searches",
	Args:  cobra.NoArgs,
	RunE:  runRecentCmd,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().Bool("clear", false, "Forget all recent searches")
}

func runRecentCmd(cmd *cobra.Command, _ []string) error {
	clearAll, _ := cmd.Flags().GetBool("clear")

	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	if clearAll {
		if err := a.Recent.Clear(); err != nil {
			return fmt.Errorf("clear recent searches: %w", err)
		}
		fmt.Fprintln(out, "Recent searches cleared")
		return nil
	}

	queries := a.Recent.All()
	if jsonOutput {
		if queries == nil {
			queries = []string{}
		}
		return printJSON(out, queries)
	}

	if len(queries) == 0 {
		fmt.Fprintln(out, "No recent searches")
		return nil
	}
	for i, q := range queries {
		fmt.Fprintf(out, "%2d. %s\n", i+1, q)
	}
	return nil
}
