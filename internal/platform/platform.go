package platform

import (
	"os"
	"strings"
)

// Platform classifies the host operating system for build and install
// decisions. There are exactly two classes; everything that is not a
// Windows NT descendant behaves like POSIX here.
type Platform int

const (
	Posix Platform = iota
	Windows
)

// windowsSignal is the value of the OS environment variable on every
// Windows NT descendant (2000, XP, ..., 11).
const windowsSignal = "Windows_NT"

// Resolve inspects the OS environment variable and returns the platform
// class. An absent or unrecognized value resolves to Posix.
func Resolve() Platform {
	return FromEnv(os.Getenv("OS"))
}

// FromEnv classifies an OS environment variable value. Comparison is
// case-insensitive; cmd.exe preserves the canonical casing but other shells
// may not.
func FromEnv(value string) Platform {
	if strings.EqualFold(value, windowsSignal) {
		return Windows
	}
	return Posix
}

// String returns the platform class name.
func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "posix"
}
