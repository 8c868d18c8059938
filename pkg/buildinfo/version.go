// Package buildinfo holds the version stamped into the puml2drawio binary.
//
// `mage build` and `mage install` set the variables from git through
// -ldflags "-X github.com/matzehuels/puml2drawio/pkg/buildinfo.Version=...".
// A plain `go build` leaves the placeholders below.
package buildinfo

import "fmt"

var (
	// Version is the release tag, or `git describe` output for snapshots.
	Version = "dev"

	// Commit is the full git commit SHA.
	Commit = "none"

	// Date is the UTC build time in RFC 3339 form.
	Date = "unknown"
)

// shortCommitLen matches git's default abbreviation.
const shortCommitLen = 7

// Template returns the cobra version template: the version on the first
// line, then the abbreviated commit and the build date.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, shortCommit(Commit), Date)
}

func shortCommit(sha string) string {
	if len(sha) > shortCommitLen {
		return sha[:shortCommitLen]
	}
	return sha
}
