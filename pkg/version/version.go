// Package version reports build metadata for the listcomp binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string // Set via ldflags.

	Revision  = revision(debug.ReadBuildInfo)
	GoVersion = runtime.Version()
)

// GetVersion returns the ldflags version, or the VCS revision when unset.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// String summarizes the build for `--version` output.
func String() string {
	s := fmt.Sprintf("%s (%s, %s/%s)", GetVersion(), GoVersion, runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := readBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}

		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
