package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuildVars(t *testing.T, version, buildTime, commit string) {
	t.Helper()

	prevVersion, prevTime, prevCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = prevVersion, prevTime, prevCommit
	})
	Version, BuildTime, GitCommit = version, buildTime, commit
}

func TestInfo_LinkerValuesWin(t *testing.T) {
	setBuildVars(t, "2.1.0", "2026-03-01T10:00:00Z", "abc123def456")

	info := Info()

	assert.Equal(t, "2.1.0", info.Version)
	assert.Equal(t, "2026-03-01T10:00:00Z", info.BuildTime)
	assert.Equal(t, "abc123def456", info.GitCommit)
	assert.Equal(t, "2.1.0", Get())
}

func TestResolve(t *testing.T) {
	defaults := BuildInfo{Version: "dev", BuildTime: unknown, GitCommit: unknown}

	tests := []struct {
		name string
		info BuildInfo
		bi   *debug.BuildInfo
		want BuildInfo
	}{
		{
			name: "no build info",
			info: defaults,
			want: defaults,
		},
		{
			name: "devel module keeps dev version",
			info: defaults,
			bi: &debug.BuildInfo{
				GoVersion: "go1.24.1",
				Main:      debug.Module{Version: "(devel)"},
			},
			want: BuildInfo{Version: "dev", BuildTime: unknown, GitCommit: unknown, GoVersion: "go1.24.1"},
		},
		{
			name: "module version and vcs stamps fill defaults",
			info: defaults,
			bi: &debug.BuildInfo{
				GoVersion: "go1.24.1",
				Main:      debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0f1e2d3c"},
					{Key: "vcs.time", Value: "2026-02-10T08:00:00Z"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: BuildInfo{Version: "v0.3.0", BuildTime: "2026-02-10T08:00:00Z", GitCommit: "0f1e2d3c", GoVersion: "go1.24.1"},
		},
		{
			name: "linker values are not overwritten",
			info: BuildInfo{Version: "1.0.0", BuildTime: "release", GitCommit: "feedbeef"},
			bi: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0f1e2d3c"}},
			},
			want: BuildInfo{Version: "1.0.0", BuildTime: "release", GitCommit: "feedbeef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.info, tt.bi))
		})
	}
}

func TestBuildInfo_String(t *testing.T) {
	info := BuildInfo{Version: "1.0.0", BuildTime: "2026-03-01", GitCommit: "abc123"}
	assert.Equal(t, "1.0.0 (commit abc123, built 2026-03-01)", info.String())

	info.GoVersion = "go1.24.1"
	assert.Equal(t, "1.0.0 (commit abc123, built 2026-03-01) go1.24.1", info.String())
}

func BenchmarkInfo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Info()
	}
}
