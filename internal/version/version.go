// Package version provides build-time version information.
package version

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "1.0.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns the version with build details, e.g. "1.0.0 (abc123, unknown)".
func String() string {
	return Version + " (" + GitCommit + ", " + BuildTime + ")"
}
