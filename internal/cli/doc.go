// Package cli defines the Cobra command tree for the servectl CLI. Each file
// in this package registers one top-level command (build, debug, run,
// install, etc.) with the root command. Command implementations delegate to
// internal packages for the platform, toolchain, and install logic and only
// handle flag parsing and I/O formatting.
package cli
