// Package version carries the build metadata stamped into the binary
// and into the SDK User-Agent string.
package version

//nolint:revive // Overridden via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
