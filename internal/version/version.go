// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version
// information for the blockcheck application.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// PreRelease contains the prerelease name of the application.  It is a
// variable so it can be modified at link time (e.g.
// `-ldflags "-X github.com/blockcheck/blockcheck/internal/version.PreRelease=rc1"`).
// It must only contain characters from the semantic version alphabet.
var PreRelease = "pre"

// vcsCommitID attempts to return the version control system short commit
// hash that was used to build the binary.  It currently only detects git
// commits.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs != "git" {
		return ""
	}
	if len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/), with the short
// commit hash included in the build metadata when available.
func String() string {
	var version strings.Builder
	fmt.Fprintf(&version, "%d.%d.%d", Major, Minor, Patch)
	if PreRelease != "" {
		fmt.Fprintf(&version, "-%s", PreRelease)
	}
	if commit := vcsCommitID(); commit != "" {
		fmt.Fprintf(&version, "+%s", commit)
	}
	return version.String()
}
