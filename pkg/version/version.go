package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version 可通过 -ldflags "-X github.com/sjzar/reaper/pkg/version.Version=v1.0.0" 覆盖
	Version   = "(dev)"
	Revision  = ""
	buildInfo = debug.BuildInfo{}
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		load(bi)
	}
}

func load(bi *debug.BuildInfo) {
	buildInfo = *bi
	if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" && Version == "(dev)" {
		Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && Revision == "" {
			Revision = s.Value
			if len(Revision) > 12 {
				Revision = Revision[:12]
			}
		}
	}
}

// GetMore 返回版本信息，mod 为 true 时附带依赖模块列表
func GetMore(mod bool) string {
	if mod {
		mod := buildInfo.String()
		if len(mod) > 0 {
			return fmt.Sprintf("\t%s\n", strings.ReplaceAll(mod[:len(mod)-1], "\n", "\n\t"))
		}
	}
	v := Version
	if Revision != "" {
		v += " (" + Revision + ")"
	}
	return fmt.Sprintf("version %s %s %s/%s\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
