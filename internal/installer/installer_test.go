package installer

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/servekit/servectl/internal/platform"
	"github.com/servekit/servectl/internal/toolchain"
)

// fakeRunner records invocations and fails calls whose joined command
// contains a configured substring.
type fakeRunner struct {
	calls  [][]string
	failOn string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(strings.Join(call, " "), f.failOn) {
		return f.err
	}
	return nil
}

func TestInstallPosixCopiesArtifact(t *testing.T) {
	f := &fakeRunner{}
	var out bytes.Buffer

	err := Install(context.Background(), Options{
		Platform: platform.Posix,
		Program:  "serve",
		Cargo:    toolchain.New("", f),
		Runner:   f,
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	if len(f.calls) != 2 {
		t.Fatalf("expected build + copy, got %d calls: %v", len(f.calls), f.calls)
	}

	build := strings.Join(f.calls[0], " ")
	if build != "cargo build --release" {
		t.Errorf("first call = %q, want release build", build)
	}

	copyCall := f.calls[1]
	want := []string{"sudo", "cp",
		filepath.Join("target", "release", "serve"),
		filepath.Join("/usr/bin", "serve")}
	if strings.Join(copyCall, " ") != strings.Join(want, " ") {
		t.Errorf("copy call = %v, want %v", copyCall, want)
	}
}

func TestInstallPosixBinDirOverride(t *testing.T) {
	f := &fakeRunner{}

	err := Install(context.Background(), Options{
		Platform: platform.Posix,
		Program:  "serve",
		BinDir:   "/usr/local/bin",
		Cargo:    toolchain.New("", f),
		Runner:   f,
		Out:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	dest := f.calls[1][len(f.calls[1])-1]
	if want := filepath.Join("/usr/local/bin", "serve"); dest != want {
		t.Errorf("copy destination = %q, want %q", dest, want)
	}
}

func TestInstallFailedBuildSkipsCopy(t *testing.T) {
	buildErr := &toolchain.ExitError{Cmd: "cargo build --release", Code: 101}
	f := &fakeRunner{failOn: "build", err: buildErr}
	var out bytes.Buffer

	err := Install(context.Background(), Options{
		Platform: platform.Posix,
		Program:  "serve",
		Cargo:    toolchain.New("", f),
		Runner:   f,
		Out:      &out,
	})

	var exitErr *toolchain.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 101 {
		t.Fatalf("Install error = %v, want build exit status 101", err)
	}
	if len(f.calls) != 1 {
		t.Errorf("expected only the build call, got %v", f.calls)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output after failed build, got %q", out.String())
	}
}

func TestInstallCopyPermissionFailurePropagates(t *testing.T) {
	copyErr := &toolchain.ExitError{Cmd: "sudo cp", Code: 1}
	f := &fakeRunner{failOn: "sudo", err: copyErr}

	err := Install(context.Background(), Options{
		Platform: platform.Posix,
		Program:  "serve",
		Cargo:    toolchain.New("", f),
		Runner:   f,
		Out:      &bytes.Buffer{},
	})

	var exitErr *toolchain.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("Install error = %v, want copy exit status 1", err)
	}
}

func TestInstallWindowsPrintsInstructions(t *testing.T) {
	f := &fakeRunner{}
	var out bytes.Buffer

	err := Install(context.Background(), Options{
		Platform: platform.Windows,
		Program:  "serve",
		Cargo:    toolchain.New("", f),
		Runner:   f,
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	// Only the build runs; no copy subprocess and no filesystem write.
	if len(f.calls) != 1 {
		t.Fatalf("expected only the build call, got %v", f.calls)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 instruction lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "Create a folder") {
		t.Errorf("line 1 = %q, want create-folder instruction", lines[0])
	}
	if !strings.Contains(lines[1], "serve.exe") {
		t.Errorf("line 2 = %q, want copy instruction naming serve.exe", lines[1])
	}
	if !strings.Contains(lines[2], "Path") {
		t.Errorf("line 3 = %q, want Path instruction", lines[2])
	}
}
