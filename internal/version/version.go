// Package version carries build metadata stamped in at release time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/schemer/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/schemer/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/schemer/internal/version.Date={{.Date}}
)

// String formats the build information for --version style output
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
