package scheduler

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
)

const (
	PruneTaskName        = "answer_pruning"
	SessionSweepTaskName = "session_sweep"
)

// NewPruneTask returns a task deleting answers older than retention
func NewPruneTask(repo results.Repository, retention time.Duration, clock quartz.Clock, logger *log.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		before := clock.Now().Add(-retention)
		pruned, err := repo.PruneAnswers(ctx, before)
		if err != nil {
			return err
		}
		logger.Info("Pruned answer history", "pruned", pruned, "before", before.UTC().Format(time.RFC3339))
		return nil
	}
}

// IdleRemover is anything that can forget idle sessions
type IdleRemover interface {
	RemoveIdle(before time.Time) int
}

// NewSessionSweepTask returns a task dropping sessions idle for longer
// than idle
func NewSessionSweepTask(sessions IdleRemover, idle time.Duration, clock quartz.Clock, logger *log.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		if removed := sessions.RemoveIdle(clock.Now().Add(-idle)); removed > 0 {
			logger.Info("Removed idle sessions", "removed", removed)
		}
		return nil
	}
}
