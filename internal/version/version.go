// Package version exposes build metadata stamped at link time.
package version

// Overridden by -ldflags on release builds.
var (
	Version = "dev"
	Commit  = ""
)

// String renders "dev" for local builds and "1.2.3 (abc1234)" for stamped ones.
func String() string {
	if Commit == "" {
		return Version
	}

	return Version + " (" + Commit + ")"
}
