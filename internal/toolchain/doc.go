// Package toolchain wraps the external cargo build tool as an opaque
// subprocess. The Runner interface is the single subprocess-invocation
// capability in the program; commands and the installer depend on it rather
// than on os/exec so tests can substitute a fake.
package toolchain
