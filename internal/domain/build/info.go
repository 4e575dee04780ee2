// Package build describes the running binary.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the version line printed by "splitgrid version --short".
func (i Info) String() string {
	return fmt.Sprintf("splitgrid %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/splitgrid"
}
