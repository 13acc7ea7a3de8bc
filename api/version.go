package api

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// Version and VersionCommit hold the version information
var (
	Version       = "0.3.0"
	VersionCommit = ""
)

func init() {
	if i, ok := debug.ReadBuildInfo(); ok {
		if vcsv, ok := lo.Find(i.Settings, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		}); ok {
			VersionCommit = vcsv.Value
		}
	}
}

// UserAgent returns the User-Agent header sent with every request.
func UserAgent() string {
	if VersionCommit == "" {
		return "menu-cli/" + Version
	}
	return "menu-cli/" + Version + " (" + lo.Substring(VersionCommit, 0, 7) + ")"
}
