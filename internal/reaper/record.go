package reaper

import (
	"context"
	"path/filepath"
	"strings"
)

// Record 枚举时刻的进程快照，发出信号后即丢弃
type Record struct {
	PID     int32
	Name    string
	Cmdline string
}

// Argv0 返回命令行第一个字段的基本名，去掉 Windows 的 .exe 后缀
func (r Record) Argv0() string {
	fields := strings.Fields(r.Cmdline)
	if len(fields) == 0 {
		return ""
	}
	base := filepath.Base(strings.ReplaceAll(fields[0], `\`, "/"))
	return strings.TrimSuffix(base, ".exe")
}

// Table 进程表，由操作系统持有，不加锁
type Table interface {
	List(ctx context.Context) ([]Record, error)

	// Kill 发送不可捕获的强制终止信号，不等待目标退出
	Kill(pid int32) error
}
