// Package app wires configuration, storage, the activity registry and the
// settle scheduler into one application object the CLI drives.
package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/composite"
	"github.com/gmsas95/fitloop-cli/internal/config"
	"github.com/gmsas95/fitloop-cli/internal/cron"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
	"github.com/gmsas95/fitloop-cli/internal/export"
	"github.com/gmsas95/fitloop-cli/internal/store"
	"github.com/gmsas95/fitloop-cli/internal/todo"
)

type App struct {
	Config     *config.Config
	Store      *store.Store
	Logger     *zap.Logger
	Registry   *activity.Registry
	FatLoss    *composite.FatLoss
	CronRunner *cron.Runner
	Todos      *todo.Manager
	Version    string
}

// New builds the full application: opens storage, registers every activity
// and restores their saved state.
func New(cfg *config.Config, logger *zap.Logger, version string) (*App, error) {
	datekey.SetLocation(cfg.Timezone)

	st, err := store.New(cfg)
	if err != nil {
		return nil, err
	}

	registry := activity.NewRegistry()
	if err := RegisterActivities(cfg, registry); err != nil {
		st.Close()
		return nil, err
	}

	todos, err := todo.NewManager(st.DB())
	if err != nil {
		st.Close()
		return nil, err
	}

	a := &App{
		Config:     cfg,
		Store:      st,
		Logger:     logger,
		Registry:   registry,
		FatLoss:    composite.NewFatLoss(registry),
		CronRunner: cron.NewRunner(registry, st, logger),
		Todos:      todos,
		Version:    version,
	}

	if err := a.restoreStates(); err != nil {
		st.Close()
		return nil, err
	}
	if n, err := todos.ExpireOverdue(time.Now()); err != nil {
		logger.Warn("todo expiry pass failed", zap.Error(err))
	} else if n > 0 {
		logger.Info("expired overdue todos", zap.Int("count", n))
	}
	return a, nil
}

func (a *App) restoreStates() error {
	today := datekey.Today()
	for _, act := range a.Registry.List() {
		raw, err := a.Store.LoadState(act.Name())
		if err != nil {
			if apperrors.GetCode(err) == apperrors.ErrNotFound.Code {
				continue
			}
			return err
		}
		if err := act.Restore(raw, today); err != nil {
			// A corrupted snapshot must not brick the whole app; the
			// activity restarts empty and the journal still has the raw
			// inputs.
			a.Logger.Warn("discarding corrupted state",
				zap.String("activity", act.Name()), zap.Error(err))
		}
	}
	return nil
}

// RecordInput records one input for the named activity, journals it and
// persists the recomputed state.
func (a *App) RecordInput(name string, args map[string]string) (activity.Feedback, error) {
	act, ok := a.Registry.Get(name)
	if !ok {
		return activity.Feedback{}, apperrors.New(apperrors.ErrActivityNotFound.Code, "unknown activity: "+name)
	}

	today := datekey.Today()
	fb, err := act.Record(args, today)
	if err != nil {
		return activity.Feedback{}, err
	}

	if err := a.Store.AppendInput(name, today, args); err != nil {
		a.Logger.Warn("input journal write failed", zap.String("activity", name), zap.Error(err))
	}
	if err := a.saveState(act); err != nil {
		return fb, err
	}
	return fb, nil
}

func (a *App) saveState(act activity.Activity) error {
	raw, err := act.Snapshot()
	if err != nil {
		return err
	}
	return a.Store.SaveState(act.Name(), raw)
}

// SaveAll persists every activity's state. Used on shutdown and after
// settlement passes.
func (a *App) SaveAll() error {
	for _, act := range a.Registry.List() {
		if err := a.saveState(act); err != nil {
			return err
		}
	}
	return nil
}

// SettleAll runs one settlement pass and persists the results.
func (a *App) SettleAll() error {
	a.CronRunner.SettleNow()
	return a.SaveAll()
}

// ClearHistory wipes one activity everywhere: engine state, snapshot and
// journal.
func (a *App) ClearHistory(name string) error {
	act, ok := a.Registry.Get(name)
	if !ok {
		return apperrors.New(apperrors.ErrActivityNotFound.Code, "unknown activity: "+name)
	}
	act.ClearAllHistory()
	if err := a.Store.DeleteState(name); err != nil {
		return err
	}
	return a.Store.ClearInputs(name)
}

// ExportActivity renders one activity's state as a backup envelope.
func (a *App) ExportActivity(name string) ([]byte, error) {
	act, ok := a.Registry.Get(name)
	if !ok {
		return nil, apperrors.New(apperrors.ErrActivityNotFound.Code, "unknown activity: "+name)
	}
	env, err := export.Export(act)
	if err != nil {
		return nil, err
	}
	return export.Marshal(env)
}

// ImportActivity replaces one activity's state from an envelope and
// persists on success.
func (a *App) ImportActivity(name string, raw []byte) export.Result {
	act, ok := a.Registry.Get(name)
	if !ok {
		return export.Result{Success: false, Message: "unknown activity: " + name}
	}
	res := export.Import(act, raw, datekey.Today())
	if !res.Success {
		return res
	}
	if err := a.saveState(act); err != nil {
		return export.Result{Success: false, Message: err.Error()}
	}
	return res
}

// StartScheduler begins the daily settle job when enabled in config.
func (a *App) StartScheduler() error {
	if !a.Config.Settle.Enabled {
		return nil
	}
	return a.CronRunner.Start(a.Config.Settle.Schedule)
}

// Close flushes state and releases storage.
func (a *App) Close() {
	a.CronRunner.Stop()
	if err := a.SaveAll(); err != nil {
		a.Logger.Warn("state flush on close failed", zap.Error(err))
	}
	if err := a.Store.Close(); err != nil {
		a.Logger.Warn("store close failed", zap.Error(err))
	}
}
