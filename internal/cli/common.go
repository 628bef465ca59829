package cli

import (
	"fmt"

	"github.com/servekit/servectl/internal/config"
	"github.com/servekit/servectl/internal/manifest"
	"github.com/servekit/servectl/internal/toolchain"
	"github.com/spf13/cobra"
)

// settings are the resolved values every operation works from, combined from
// defaults, the project manifest, and user config. Precedence, lowest first:
// built-in default, servectl.yaml, config file / SERVECTL_* env.
type settings struct {
	Program    string
	CargoBin   string
	BinDir     string
	MinVersion string
}

func loadSettings() (*settings, error) {
	config.Load()

	proj, err := manifest.Find(".")
	if err != nil {
		return nil, fmt.Errorf("loading project manifest: %w", err)
	}

	return &settings{
		Program:    resolve(config.KeyProgram, proj.Program),
		CargoBin:   resolve(config.KeyCargo, proj.Cargo.Bin),
		BinDir:     resolve(config.KeyBinDir, proj.Install.BinDir),
		MinVersion: proj.Cargo.MinVersion,
	}, nil
}

// resolve returns the config value for key unless it is still the built-in
// default and the manifest provides an override.
func resolve(key, manifestValue string) string {
	value := config.Get(key)
	if value == config.Default(key) && manifestValue != "" {
		return manifestValue
	}
	return value
}

// newCargo builds a Cargo wired to the command's output streams.
func newCargo(cmd *cobra.Command, s *settings) *toolchain.Cargo {
	return toolchain.New(s.CargoBin, newRunner(cmd))
}

func newRunner(cmd *cobra.Command) toolchain.Runner {
	return &toolchain.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}
