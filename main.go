package main

import (
	"errors"
	"os"

	"github.com/servekit/servectl/internal/cli"
	"github.com/servekit/servectl/internal/toolchain"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// A delegated command that failed exits with the child's own status.
		var exitErr *toolchain.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
