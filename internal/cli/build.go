package cli

import "github.com/spf13/cobra"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the release binary",
	Long:  `Compile the program in release mode without running it. This is also the default operation when no subcommand is given.`,
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// runBuild performs the release build. It backs both the build subcommand
// and the bare root invocation.
func runBuild(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	return newCargo(cmd, s).BuildRelease(cmd.Context())
}
