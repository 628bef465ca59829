package platform

import "path/filepath"

// ReleaseDir is cargo's conventional release output directory, relative to
// the project root.
var ReleaseDir = filepath.Join("target", "release")

// ArtifactPath returns the expected path of the compiled release binary for
// the given platform and program name. The path is computed independently of
// whether a build has occurred.
func ArtifactPath(p Platform, program string) string {
	name := program
	if p == Windows {
		name += ".exe"
	}
	return filepath.Join(ReleaseDir, name)
}
