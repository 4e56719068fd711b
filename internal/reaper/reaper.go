package reaper

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/reaper/internal/errors"
)

// Reaper 枚举进程表、过滤目标并逐个强制终止
type Reaper struct {
	table   Table
	matcher *Matcher
}

func New(table Table, matcher *Matcher) *Reaper {
	if matcher == nil {
		matcher = NewMatcher(ModeSubstring, nil, nil)
	}
	return &Reaper{
		table:   table,
		matcher: matcher,
	}
}

// Reap 单次运行：list -> filter -> kill
// 枚举失败时不发送任何信号并返回错误；单个进程的失败只记录在结果中
func (r *Reaper) Reap(ctx context.Context, target string) (*Result, error) {
	if target == "" {
		return nil, errors.RequiredParam("target")
	}

	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Str("target", target).Logger()

	records, err := r.table.List(ctx)
	if err != nil {
		logger.Err(err).Msg("list processes failed")
		return nil, errors.Wrap(err, errors.ErrTypeEnumeration, "failed to list processes", errors.ExitFailure).
			WithRunID(runID)
	}
	logger.Debug().Int("processes", len(records)).Msg("process table snapshot")

	targets := r.matcher.Select(records, target)
	result := &Result{
		RunID:    runID,
		Target:   target,
		Attempts: make([]Attempt, 0, len(targets)),
	}

	for _, rec := range targets {
		err := r.table.Kill(rec.PID)
		attempt := Attempt{
			PID:     rec.PID,
			Cmdline: rec.Cmdline,
			Outcome: OutcomeOf(err),
			Err:     err,
		}
		result.Attempts = append(result.Attempts, attempt)

		ev := logger.Info()
		if err != nil {
			ev = logger.Warn().Err(err)
		}
		ev.Int32("pid", rec.PID).
			Str("cmdline", rec.Cmdline).
			Str("outcome", string(attempt.Outcome)).
			Msg("kill")
	}

	return result, nil
}
