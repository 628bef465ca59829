package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's default help: just the operation names, one per
// line, so the list is stable scriptable output on every platform.
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "List available operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range rootCmd.Commands() {
			if c.Hidden {
				continue
			}
			fmt.Fprintln(out, c.Name())
		}
	},
}
