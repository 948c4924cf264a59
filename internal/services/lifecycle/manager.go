package lifecycle

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc is one graceful shutdown step.
type ShutdownFunc func(ctx context.Context) error

type step struct {
	name string
	fn   ShutdownFunc
}

// Manager runs registered shutdown steps in reverse registration order: the
// HTTP server registers before and therefore stops after the store gateway
// and journal, so final flushes complete before their stores close.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	steps []step
}

func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{timeout: timeout, logger: logger}
}

// Register queues a shutdown step. Later registrations stop earlier.
func (m *Manager) Register(name string, fn ShutdownFunc) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.steps = append(m.steps, step{name: name, fn: fn})
	m.mu.Unlock()
}

// Listen invokes cancel once SIGINT or SIGTERM arrives.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer stop()
		<-sigCtx.Done()
		m.logger.Info("shutdown signal received")
		cancel()
	}()
}

// Shutdown runs every step under the configured timeout. A failing step is
// logged and collected; the remaining steps still run.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]
		if err := s.fn(ctx); err != nil {
			m.logger.Error("shutdown step failed", zap.String("component", s.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		m.logger.Info("component stopped", zap.String("component", s.name))
	}
	return errors.Join(errs...)
}
