package cli

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile in release mode and run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return newCargo(cmd, s).RunRelease(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
