// Package version holds build metadata for the sesh CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Semver parses Version.
func Semver() (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", Version, err)
	}
	return v, nil
}

// Colored renders Version with each numeric component in its own colour.
// Invalid versions are returned unchanged.
func Colored() string {
	v, err := Semver()
	if err != nil {
		return Version
	}
	s := majorColor.Sprint(v.Major()) + "." + minorColor.Sprint(v.Minor()) + "." + patchColor.Sprint(v.Patch())
	if pre := v.Prerelease(); pre != "" {
		s += "-" + pre
	}
	if meta := v.Metadata(); meta != "" {
		s += "+" + meta
	}
	return s
}

// Info is the machine-readable build description.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the build description.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// String is the one-line form printed by `sesh --version`.
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s += " (" + i.GitCommit + ")"
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	return s
}
