// Package version derives version information for the application from the
// build information compiled into the binary
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Touchstick"

// the vcs revision the binary was built from. if the source had uncommitted
// changes at build time the revision is suffixed with "+dirty". when there is
// no vcs information at all, for example when running with "go run .", the
// revision reads "local"
var revision string

// Revision returns the revision string and whether real vcs information was
// available when the binary was built
func Revision() (string, bool) {
	return revision, revision != "local"
}

// Title returns a string suitable for a window title. the revision is only
// included when vcs information is available
func Title() string {
	rev, ok := Revision()
	if !ok {
		return ApplicationName
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "local"
		return
	}

	revision = vcsRevision
	if vcsModified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}
}
