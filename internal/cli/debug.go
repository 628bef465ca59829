package cli

import "github.com/spf13/cobra"

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Compile in debug mode and run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return newCargo(cmd, s).RunDebug(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
