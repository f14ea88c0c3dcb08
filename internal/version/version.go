// Package version provides build-time version information for bal.
package version

import "fmt"

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Template returns the cobra version template, embedding commit and build date.
func Template() string {
	return fmt.Sprintf("bal version {{.Version}} (commit: %s, built: %s)\n", Commit, Date)
}
