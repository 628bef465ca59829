package cli

import (
	"github.com/servekit/servectl/internal/installer"
	"github.com/servekit/servectl/internal/platform"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Build and install the release binary system-wide",
	Long: `Perform a release build, then install the artifact.

On POSIX systems the binary is copied to the system binary directory, which
requires elevated privilege. On Windows no files are written; the manual
install steps are printed instead. If the build fails, nothing is installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		return installer.Install(cmd.Context(), installer.Options{
			Platform: platform.Resolve(),
			Program:  s.Program,
			BinDir:   s.BinDir,
			Cargo:    newCargo(cmd, s),
			Runner:   newRunner(cmd),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
