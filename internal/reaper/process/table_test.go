//go:build unix

package process

import (
	"context"
	"os"
	"os/exec"
	"slices"
	"strings"
	"testing"

	"github.com/sjzar/reaper/internal/errors"
	"github.com/sjzar/reaper/internal/reaper"
)

func startSleeper(t *testing.T, seconds string) *exec.Cmd {
	t.Helper()
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	cmd := exec.Command(path, seconds)
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleeper: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})
	return cmd
}

func TestTableListFindsChild(t *testing.T) {
	cmd := startSleeper(t, "4321.25")
	pid := int32(cmd.Process.Pid)

	records, err := NewTable().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	idx := slices.IndexFunc(records, func(r reaper.Record) bool { return r.PID == pid })
	if idx < 0 {
		t.Fatalf("child %d not found in %d records", pid, len(records))
	}
	if !strings.Contains(records[idx].Cmdline, "4321.25") {
		t.Errorf("cmdline = %q, want it to contain the argument", records[idx].Cmdline)
	}

	self := int32(os.Getpid())
	if !slices.ContainsFunc(records, func(r reaper.Record) bool { return r.PID == self }) {
		t.Errorf("own process %d missing from snapshot", self)
	}
}

func TestTableKill(t *testing.T) {
	cmd := startSleeper(t, "4321.5")
	pid := int32(cmd.Process.Pid)

	table := NewTable()
	if err := table.Kill(pid); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	// SIGKILL 不可捕获，Wait 应返回被信号终止
	if err := cmd.Wait(); err == nil {
		t.Errorf("sleeper exited cleanly, want killed")
	}

	err := table.Kill(pid)
	if reaper.OutcomeOf(err) != reaper.OutcomeNotFound {
		t.Errorf("Kill() on reaped pid = %v (%s), want not_found", err, errors.GetType(err))
	}
}

func TestReapEndToEnd(t *testing.T) {
	cmd := startSleeper(t, "4321.75")
	pid := int32(cmd.Process.Pid)

	m := reaper.NewMatcher(reaper.ModeSubstring, nil, Self())
	res, err := reaper.New(NewTable(), m).Reap(context.Background(), "4321.75")
	if err != nil {
		t.Fatalf("Reap() error = %v", err)
	}
	if !slices.Contains(res.PIDs(), pid) {
		t.Fatalf("Reap() did not attempt child %d: %s", pid, res)
	}
	_ = cmd.Wait()
}

func TestSelf(t *testing.T) {
	self := Self()
	if len(self) != 2 || self[0] != int32(os.Getpid()) || self[1] != int32(os.Getppid()) {
		t.Errorf("Self() = %v", self)
	}
}
