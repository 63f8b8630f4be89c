package swatch

import "runtime/debug"

// Build metadata, read from the binary's embedded build info. Release
// builds get a real version from the module system; source builds fall
// back to whatever the VCS stamp says.
var (
	Version     = "unknown"
	Revision    = "unknown"
	ReleaseDate = "unknown"
	DirtyBuild  = false
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Revision = s.Value
		case "vcs.time":
			ReleaseDate = s.Value
		case "vcs.modified":
			DirtyBuild = s.Value == "true"
		}
	}
}
