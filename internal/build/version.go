// Package build provides version and build information for latest-changelog.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns a one-line summary of the build for --version output.
func Info() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s/%s)",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
