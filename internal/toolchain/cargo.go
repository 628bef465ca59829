package toolchain

import "context"

// DefaultBin is the cargo executable name used when no override is configured.
const DefaultBin = "cargo"

// Cargo invokes the cargo build tool. It supplies mode flags and consumes
// only the resulting exit status; cargo's stdout/stderr pass through the
// Runner untouched.
type Cargo struct {
	// Bin is the cargo executable name or path. Empty means DefaultBin.
	Bin    string
	Runner Runner
}

// New returns a Cargo that executes the given binary through the runner.
func New(bin string, runner Runner) *Cargo {
	if bin == "" {
		bin = DefaultBin
	}
	return &Cargo{Bin: bin, Runner: runner}
}

// BuildRelease compiles in release mode without running.
func (c *Cargo) BuildRelease(ctx context.Context) error {
	return c.Runner.Run(ctx, c.bin(), "build", "--release")
}

// RunDebug compiles in debug mode and runs the result.
func (c *Cargo) RunDebug(ctx context.Context) error {
	return c.Runner.Run(ctx, c.bin(), "run")
}

// RunRelease compiles in release mode and runs the result.
func (c *Cargo) RunRelease(ctx context.Context) error {
	return c.Runner.Run(ctx, c.bin(), "run", "--release")
}

func (c *Cargo) bin() string {
	if c.Bin == "" {
		return DefaultBin
	}
	return c.Bin
}
