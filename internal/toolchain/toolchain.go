package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command synchronously and reports its outcome.
// A non-zero child exit status is returned as *ExitError so callers can
// propagate the status verbatim as their own.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a child process that ran to completion with a non-zero
// exit status.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// ExecRunner implements Runner using os/exec, streaming the child's output
// to the configured writers.
type ExecRunner struct {
	// Dir is the working directory for the child process. Empty means the
	// current directory.
	Dir string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves name in PATH, executes it with the given arguments, and blocks
// until it completes. The child inherits the parent environment.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Cmd:  strings.Join(append([]string{name}, args...), " "),
				Code: exitErr.ExitCode(),
			}
		}
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}
