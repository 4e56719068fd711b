package reaper

import (
	"fmt"

	"github.com/sjzar/reaper/internal/errors"
)

// Outcome 单个进程的信号投递结果
type Outcome string

const (
	OutcomeKilled           Outcome = "killed"
	OutcomeNotFound         Outcome = "not_found"
	OutcomePermissionDenied Outcome = "permission_denied"
	OutcomeFailed           Outcome = "failed"
)

// OutcomeOf 根据 Table.Kill 返回的错误分类
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeKilled
	case errors.Is(err, errors.ErrTypeNotFound):
		return OutcomeNotFound
	case errors.Is(err, errors.ErrTypePermission):
		return OutcomePermissionDenied
	default:
		return OutcomeFailed
	}
}

type Attempt struct {
	PID     int32   `json:"pid"`
	Cmdline string  `json:"cmdline"`
	Outcome Outcome `json:"outcome"`
	Err     error   `json:"-"`
}

// Result 一次运行的汇总，Attempts 保持枚举顺序
type Result struct {
	RunID    string    `json:"run_id"`
	Target   string    `json:"target"`
	Attempts []Attempt `json:"attempts"`
}

func (r *Result) Count() int {
	return len(r.Attempts)
}

func (r *Result) count(o Outcome) int {
	n := 0
	for _, a := range r.Attempts {
		if a.Outcome == o {
			n++
		}
	}
	return n
}

func (r *Result) Killed() int {
	return r.count(OutcomeKilled)
}

func (r *Result) NotFound() int {
	return r.count(OutcomeNotFound)
}

func (r *Result) Denied() int {
	return r.count(OutcomePermissionDenied)
}

func (r *Result) Failed() int {
	return r.count(OutcomeFailed)
}

// PIDs 返回所有尝试过的进程号
func (r *Result) PIDs() []int32 {
	pids := make([]int32, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		pids = append(pids, a.PID)
	}
	return pids
}

func (r *Result) String() string {
	return fmt.Sprintf("target=%q attempted=%d killed=%d not_found=%d denied=%d failed=%d",
		r.Target, r.Count(), r.Killed(), r.NotFound(), r.Denied(), r.Failed())
}
