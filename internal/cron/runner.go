// Package cron runs the daily settlement job: shortly after midnight every
// activity is asked to backfill absence penalties so each calendar day ends
// up with a score even when nothing was recorded.
package cron

import (
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

// Bookkeeper records settle passes so a restart can tell how far the job
// got. *store.Store satisfies it.
type Bookkeeper interface {
	MarkSettled(day string) error
	LastSettledDay() (string, error)
}

// Runner schedules the settlement pass.
type Runner struct {
	registry *activity.Registry
	books    Bookkeeper
	logger   *zap.Logger
	cron     *cron.Cron
	mu       sync.Mutex
	running  bool
}

// NewRunner builds a runner; schedule is a standard five-field cron spec.
func NewRunner(registry *activity.Registry, books Bookkeeper, logger *zap.Logger) *Runner {
	return &Runner{
		registry: registry,
		books:    books,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the schedule and begins running. Settlement also runs once
// immediately to cover days missed while the process was down.
func (r *Runner) Start(schedule string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return apperrors.New(apperrors.ErrInternal.Code, "settle runner already running")
	}

	if _, err := r.cron.AddFunc(schedule, r.SettleNow); err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfigInvalid.Code, "invalid settle schedule: "+schedule)
	}

	r.SettleNow()
	r.cron.Start()
	r.running = true
	return nil
}

// Stop halts the scheduler, waiting for a running pass to finish.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.running = false
}

// SettleNow runs one settlement pass for today across all activities.
func (r *Runner) SettleNow() {
	today := datekey.Today()

	last, err := r.books.LastSettledDay()
	if err != nil {
		r.logger.Warn("settle bookkeeping read failed", zap.Error(err))
	}
	if last == today {
		return
	}

	for _, a := range r.registry.List() {
		a.Settle(today)
	}
	if err := r.books.MarkSettled(today); err != nil {
		r.logger.Warn("settle bookkeeping write failed", zap.Error(err))
	}
	r.logger.Info("settled absence penalties", zap.String("day", today))
}
