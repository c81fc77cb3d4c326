package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive browser (default)",
	Args:  cobra.NoArgs,
	RunE:  runTUICmd,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flicks %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd, versionCmd)
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	a.Logger.Info("starting tui", "version", version)
	return a.RunTUI(cmd.Context())
}
