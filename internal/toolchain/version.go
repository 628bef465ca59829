package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DetectVersion runs `<bin> --version` and parses the reported version.
func DetectVersion(ctx context.Context, bin string) (*semver.Version, error) {
	if bin == "" {
		bin = DefaultBin
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", bin, err)
	}
	return ParseVersionOutput(string(out))
}

// ParseVersionOutput extracts the semantic version from cargo's --version
// output, e.g. "cargo 1.78.0 (54d8815d0 2024-03-26)".
func ParseVersionOutput(out string) (*semver.Version, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 2 {
		return nil, fmt.Errorf("unexpected version output %q", strings.TrimSpace(out))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}

// MeetsMinimum reports whether v satisfies the given minimum version string.
// An empty minimum always passes.
func MeetsMinimum(v *semver.Version, minimum string) (bool, error) {
	if minimum == "" {
		return true, nil
	}
	floor, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return v.Compare(floor) >= 0, nil
}
