// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// UserAgent returns the product token sent to the search API, e.g. "ghsearch/1.2.0".
func UserAgent(product string) string {
	return product + "/" + Version
}
