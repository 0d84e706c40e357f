// Package buildinfo carries the firmware version stamped at build time,
// shown on the splash screen and in the boot log line.
package buildinfo

// Version is set via -ldflags "-X obdash/internal/buildinfo.Version=...".
var Version = "dev"

// Short returns the identifier the splash screen prints.
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
