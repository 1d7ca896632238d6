// Package metadata carries build information, stamped via -ldflags "-X".
package metadata

var (
	Version    = "freshest"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)
