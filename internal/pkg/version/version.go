package version

import "fmt"

// These are overridden at build time using -ldflags.
var (
	Version     = "0.1.0"
	Prerelease  = "dev"
	BuildTime   = "unknown"
	BuildCommit = "unknown"
)

func Get() string {
	if Prerelease == "" {
		return Version
	}
	return fmt.Sprintf("%s-%s", Version, Prerelease)
}
