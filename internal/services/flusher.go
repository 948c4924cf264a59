package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/internal/store"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// Flusher retries deferred collection flushes on a fixed schedule. Saves that
// failed leave memory ahead of storage; the flusher converges the two once
// the gateway is reachable again.
type Flusher struct {
	store    *store.Store
	monitor  ConnectionHealth
	logger   *zap.Logger
	cron     *cron.Cron
	interval time.Duration
}

func NewFlusher(st *store.Store, monitor ConnectionHealth, logger *zap.Logger, interval time.Duration) *Flusher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Flusher{
		store:    st,
		monitor:  monitor,
		logger:   logger,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = f.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		f.Run(ctx)
	})

	return f
}

// Start launches the retry scheduler.
func (f *Flusher) Start() {
	if f == nil || f.cron == nil {
		return
	}
	f.cron.Start()
	f.logger.Info("flush retry scheduler started", zap.Duration("interval", f.interval))
}

// Stop gracefully stops the scheduler.
func (f *Flusher) Stop(ctx context.Context) {
	if f == nil || f.cron == nil {
		return
	}
	stopCtx := f.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	f.logger.Info("flush retry scheduler stopped")
}

// Run performs one retry pass. Skipped while the gateway is known offline;
// a still-failing flush stays journaled for the next pass.
func (f *Flusher) Run(ctx context.Context) {
	if f == nil || f.store == nil {
		return
	}
	if f.monitor != nil && !f.monitor.IsOnline() {
		f.logger.Debug("skipping flush retry (storage offline)")
		return
	}
	if err := f.store.FlushPending(ctx); err != nil {
		f.logger.Warn("flush retry pass incomplete", zap.Error(err))
	}
}
