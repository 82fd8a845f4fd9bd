package buildinfo

import "fmt"

var (
	// Version will be set via ldflags during build
	Version = "dev"
	// Commit will be set via ldflags during build
	Commit = "none"
	// Date will be set via ldflags during build
	Date = "unknown"

	// RepoOwner and RepoName locate the GitHub project used by the version check.
	RepoOwner = "fdc-tools"
	RepoName  = "fdc"
)

// String returns the human readable version line.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
