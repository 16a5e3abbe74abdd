// Package version carries build metadata, overridden at link time with
// -ldflags "-X github.com/bulga138/led/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetFullVersion() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}
