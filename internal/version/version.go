// Package version provides build information for velvetpour.
package version

import "fmt"

// Version is the release of velvetpour. Overridden at build time with ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time with ldflags.
var Commit = "unknown"

// String returns the version including the commit hash when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner is the one line printed by the version command.
func Banner() string {
	return fmt.Sprintf("velvetpour version %s", String())
}
