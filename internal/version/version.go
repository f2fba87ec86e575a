// Package version exposes the build metadata stamped into the utilsearch
// binary.
package version

import "fmt"

// Stamped at build time, e.g.:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0 \
//	  -X .../internal/version.Commit=$(git rev-parse --short HEAD) \
//	  -X .../internal/version.Date=$(date -u +%Y-%m-%d)"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion renders the build metadata as a single display line. Unstamped
// binaries identify themselves as development builds.
func GetVersion() string {
	if Version == "dev" {
		return "dev (development build)"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
