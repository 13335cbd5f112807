package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/todoclient/store"
	taskUC "github.com/fastygo/todoclient/usecase/task"
)

// ConnectionHealth abstracts the connectivity monitor.
type ConnectionHealth interface {
	IsOnline() bool
}

// RefresherConfig controls how frequently the task snapshot is pulled.
type RefresherConfig struct {
	Interval time.Duration
}

// Refresher keeps the task collection store fresh by pulling full
// snapshots on a schedule. All updates stay pull-driven; there is no
// push channel to the server.
type Refresher struct {
	tasks   *taskUC.UseCase
	session *store.Session
	monitor ConnectionHealth
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     RefresherConfig
}

func NewRefresher(tasks *taskUC.UseCase, session *store.Session, monitor ConnectionHealth, logger *zap.Logger, cfg RefresherConfig) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Refresher{
		tasks:   tasks,
		session: session,
		monitor: monitor,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := r.Pull(ctx); err != nil {
			r.logger.Warn("scheduled task refresh failed", zap.Error(err))
		}
	})

	return r
}

// Start launches the cron scheduler.
func (r *Refresher) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("task refresher started", zap.Duration("interval", r.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (r *Refresher) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("task refresher stopped")
}

// Pull refreshes the snapshot once, skipping quietly when logged out or
// offline.
func (r *Refresher) Pull(ctx context.Context) error {
	if !r.session.IsLoggedIn() {
		r.logger.Debug("skipping task refresh (logged out)")
		return nil
	}
	if r.monitor != nil && !r.monitor.IsOnline() {
		r.logger.Debug("skipping task refresh (offline)")
		return nil
	}
	return r.tasks.Refresh(ctx)
}
