package process

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/process"
	log "github.com/sirupsen/logrus"

	"github.com/sjzar/reaper/internal/errors"
	"github.com/sjzar/reaper/internal/reaper"
)

// Table 基于 gopsutil 的系统进程表
type Table struct{}

var _ reaper.Table = (*Table)(nil)

// NewTable 创建系统进程表
func NewTable() *Table {
	return &Table{}
}

// List 枚举当前用户可见的所有进程
// 枚举过程中退出或无法读取的进程会被跳过
func (t *Table) List(ctx context.Context) ([]reaper.Record, error) {
	processes, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.EnumerationFailed(err)
	}

	records := make([]reaper.Record, 0, len(processes))
	for _, p := range processes {
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil {
			log.Debugf("skip process %d: read cmdline: %v", p.Pid, err)
			continue
		}

		name, nameErr := p.NameWithContext(ctx)
		if nameErr != nil {
			log.Debugf("process %d: read name: %v", p.Pid, nameErr)
		}

		rec, ok := newRecord(p.Pid, cmdline, name, nameErr)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// newRecord 组装快照记录
// 读不到进程名时退回到 argv0，避免匹配的进程被漏掉
func newRecord(pid int32, cmdline, name string, nameErr error) (reaper.Record, bool) {
	rec := reaper.Record{PID: pid, Cmdline: cmdline}
	if nameErr != nil {
		name = rec.Argv0()
	}
	rec.Name = name

	// 内核线程没有命令行，与 ps 一样显示为 [name]
	if rec.Cmdline == "" {
		if name == "" {
			return rec, false
		}
		rec.Cmdline = "[" + name + "]"
	}
	return rec, true
}

// Kill 发送 SIGKILL（Windows 上为 TerminateProcess）
func (t *Table) Kill(pid int32) error {
	p, err := process.NewProcess(pid)
	if err == nil {
		err = p.Kill()
	}
	return killError(pid, err)
}

// killError 将系统错误归类为 ProcessGone / SignalDenied / SignalFailed
func killError(pid int32, err error) error {
	switch {
	case err == nil:
		return nil
	case isGone(err):
		return errors.ProcessGone(pid, err)
	case isDenied(err):
		return errors.SignalDenied(pid, err)
	default:
		return errors.SignalFailed(pid, err)
	}
}

// Self 返回自身与父进程的 PID，二者不应被终止
func Self() []int32 {
	return []int32{int32(os.Getpid()), int32(os.Getppid())}
}
