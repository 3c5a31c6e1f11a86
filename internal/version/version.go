package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

const unknown = "unknown"

// Set at build time with -ldflags "-X postalform/internal/version.Version=...".
// Values left at their defaults are filled from the module build info.
var (
	Version   = "dev"
	BuildTime = unknown
	GitCommit = unknown
)

var readBuildInfo = sync.OnceValues(debug.ReadBuildInfo)

type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	GoVersion string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
}

func (b BuildInfo) String() string {
	s := fmt.Sprintf("%s (commit %s, built %s)", b.Version, b.GitCommit, b.BuildTime)
	if b.GoVersion != "" {
		s += " " + b.GoVersion
	}
	return s
}

// Get returns the service version reported by health endpoints.
func Get() string {
	return Info().Version
}

func Info() BuildInfo {
	bi, ok := readBuildInfo()
	if !ok {
		bi = nil
	}
	return resolve(BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}, bi)
}

func resolve(info BuildInfo, bi *debug.BuildInfo) BuildInfo {
	if bi == nil {
		return info
	}

	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == unknown:
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == unknown:
			info.BuildTime = s.Value
		}
	}
	return info
}
