package reaper

import (
	"slices"
	"strings"
)

const (
	ModeSubstring = "substring"
	ModeName      = "name"
)

// DefaultSelfSignatures 过滤工具自身的进程名，对应 `grep -v grep`
var DefaultSelfSignatures = []string{"grep"}

// Matcher 决定快照中哪些进程会被终止
type Matcher struct {
	Mode string

	// Exclude 命令行包含任一 token 的进程不会被终止
	Exclude []string

	// SelfPIDs 永不终止的进程号，通常是自身与父进程
	SelfPIDs []int32

	// SelfSignatures argv0 为这些名字的进程被视为过滤工具自身
	SelfSignatures []string
}

func NewMatcher(mode string, exclude []string, selfPIDs []int32) *Matcher {
	if mode == "" {
		mode = ModeSubstring
	}
	return &Matcher{
		Mode:           mode,
		Exclude:        exclude,
		SelfPIDs:       selfPIDs,
		SelfSignatures: slices.Clone(DefaultSelfSignatures),
	}
}

// Match 判断单条记录是否包含目标
func (m *Matcher) Match(r Record, target string) bool {
	if target == "" {
		return false
	}
	if m.Mode == ModeName {
		return r.Name == target || r.Argv0() == target
	}
	return strings.Contains(r.Cmdline, target)
}

// IsSelf 判断记录是否属于枚举/过滤机制本身
func (m *Matcher) IsSelf(r Record) bool {
	if slices.Contains(m.SelfPIDs, r.PID) {
		return true
	}
	argv0 := r.Argv0()
	return argv0 != "" && slices.Contains(m.SelfSignatures, argv0)
}

// IsExcluded 判断记录是否命中排除列表
func (m *Matcher) IsExcluded(r Record) bool {
	for _, token := range m.Exclude {
		if token != "" && strings.Contains(r.Cmdline, token) {
			return true
		}
	}
	return false
}

// Select 按枚举顺序返回需要终止的记录，同一 PID 只出现一次
func (m *Matcher) Select(records []Record, target string) []Record {
	var selected []Record
	seen := make(map[int32]struct{})
	for _, r := range records {
		if !m.Match(r, target) || m.IsSelf(r) || m.IsExcluded(r) {
			continue
		}
		if _, ok := seen[r.PID]; ok {
			continue
		}
		seen[r.PID] = struct{}{}
		selected = append(selected, r)
	}
	return selected
}
