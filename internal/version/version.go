// Package version carries build metadata for the tern binary. The values
// are plain strings so -ldflags can override them; rendering is left to
// the CLI.
package version

import "fmt"

var (
	// Version is the semantic version of the binary.
	Version = "0.1.0-dev"

	// GitCommit is the commit the binary was built from, when known.
	GitCommit = ""

	// BuildDate is the build timestamp in ISO-8601, when known.
	BuildDate = ""
)

// String renders the version with whatever build metadata is present.
func String() string {
	out := Version
	if GitCommit != "" {
		out = fmt.Sprintf("%s (%s)", out, GitCommit)
	}
	if BuildDate != "" {
		out = fmt.Sprintf("%s, built %s", out, BuildDate)
	}
	return out
}
