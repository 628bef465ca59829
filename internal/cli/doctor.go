package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/servekit/servectl/internal/platform"
	"github.com/servekit/servectl/internal/toolchain"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the build environment",
	Long:  `Verify that cargo is available and recent enough, and report whether a release artifact exists for this platform.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Toolchain check:")

		path, err := exec.LookPath(s.CargoBin)
		if err != nil {
			fmt.Fprintf(out, "  [MISS] %s not found in PATH\n", s.CargoBin)
			return fmt.Errorf("cargo not found: %w", err)
		}
		fmt.Fprintf(out, "  [ OK ] %s found at %s\n", s.CargoBin, path)

		v, err := toolchain.DetectVersion(cmd.Context(), s.CargoBin)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] could not detect cargo version: %v\n", err)
			return err
		}
		ok, err := toolchain.MeetsMinimum(v, s.MinVersion)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "  [FAIL] cargo %s is older than required %s\n", v, s.MinVersion)
			return fmt.Errorf("cargo %s does not meet minimum version %s", v, s.MinVersion)
		}
		if s.MinVersion != "" {
			fmt.Fprintf(out, "  [ OK ] cargo %s (>= %s)\n", v, s.MinVersion)
		} else {
			fmt.Fprintf(out, "  [ OK ] cargo %s\n", v)
		}

		fmt.Fprintln(out, "Artifact check:")
		artifact := platform.ArtifactPath(platform.Resolve(), s.Program)
		if _, err := os.Stat(artifact); err != nil {
			fmt.Fprintf(out, "  [MISS] %s not built yet\n", artifact)
		} else {
			fmt.Fprintf(out, "  [ OK ] %s exists\n", artifact)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
