package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	oldVersion, oldRevision, oldInfo := Version, Revision, buildInfo
	t.Cleanup(func() {
		Version, Revision, buildInfo = oldVersion, oldRevision, oldInfo
	})

	Version, Revision = "(dev)", ""
	load(&debug.BuildInfo{
		Main: debug.Module{Path: "github.com/sjzar/reaper", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		},
	})

	if Version != "v1.2.3" {
		t.Errorf("Version = %q, want v1.2.3", Version)
	}
	if Revision != "0123456789ab" {
		t.Errorf("Revision = %q, want 0123456789ab", Revision)
	}

	got := GetMore(false)
	if !strings.Contains(got, "v1.2.3 (0123456789ab)") || !strings.Contains(got, runtime.GOOS) {
		t.Errorf("GetMore(false) = %q", got)
	}
}

func TestLoadKeepsDevForDevelBuilds(t *testing.T) {
	oldVersion, oldRevision, oldInfo := Version, Revision, buildInfo
	t.Cleanup(func() {
		Version, Revision, buildInfo = oldVersion, oldRevision, oldInfo
	})

	Version, Revision = "(dev)", ""
	load(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "(dev)" {
		t.Errorf("Version = %q, want (dev)", Version)
	}
}
