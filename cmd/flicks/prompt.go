package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the command's streams. Anything but
// "y" or "yes" is a no.
func confirm(cmd *cobra.Command, label string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", label)
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
