// Package buildinfo carries the version stamped in with
// -ldflags "-X keynav/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String describes the build on one line.
func String() string {
	return fmt.Sprintf("keynav %s (commit %s, built %s)", Short(), Commit, Date)
}
