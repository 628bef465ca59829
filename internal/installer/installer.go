// Package installer implements the composite install operation: a release
// build followed by the platform-specific step that makes the artifact
// available as a system-wide command.
package installer

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/servekit/servectl/internal/platform"
	"github.com/servekit/servectl/internal/toolchain"
)

// DefaultBinDir is the system-wide binary directory used for POSIX installs
// when no override is configured.
const DefaultBinDir = "/usr/bin"

// Options configures an install run.
type Options struct {
	Platform platform.Platform
	// Program is the binary name, e.g. "serve".
	Program string
	// BinDir is the POSIX install target directory. Empty means DefaultBinDir.
	BinDir string
	// Cargo performs the release build.
	Cargo *toolchain.Cargo
	// Runner performs the copy step, so a permission failure surfaces as the
	// copy process's own exit status.
	Runner toolchain.Runner
	// Out receives progress and instruction text.
	Out io.Writer
}

// Install builds the release artifact and then installs it. If the build
// fails, the install step does not run and the build's error is returned
// unmodified.
//
// On POSIX the artifact is copied to <BinDir>/<Program> via sudo cp. On
// Windows no filesystem action is taken; manual instructions are printed
// instead.
func Install(ctx context.Context, opts Options) error {
	if err := opts.Cargo.BuildRelease(ctx); err != nil {
		return err
	}

	artifact := platform.ArtifactPath(opts.Platform, opts.Program)

	if opts.Platform == platform.Windows {
		printWindowsInstructions(opts.Out, opts.Program, artifact)
		return nil
	}

	binDir := opts.BinDir
	if binDir == "" {
		binDir = DefaultBinDir
	}
	dest := filepath.Join(binDir, opts.Program)

	return opts.Runner.Run(ctx, "sudo", "cp", artifact, dest)
}

// printWindowsInstructions emits the three manual install steps. Windows has
// no conventional system binary directory, so the user picks one.
func printWindowsInstructions(w io.Writer, program, artifact string) {
	fmt.Fprintf(w, "Create a folder for %s, for example C:\\Program Files\\%s\n", program, program)
	fmt.Fprintf(w, "Copy %s into that folder\n", artifact)
	fmt.Fprintf(w, "Add that folder to your Path environment variable\n")
}
