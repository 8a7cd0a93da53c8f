// Package version exposes build metadata injected via -ldflags.
package version

// Defaults apply to local development builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
