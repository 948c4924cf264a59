package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gamedesk/backend/internal/infrastructure/journal"
	"github.com/gamedesk/backend/repository"
)

// Monitor periodically checks whether the persistence gateway is reachable
// and how many collection flushes are waiting in the journal.
type Monitor struct {
	gateway repository.Gateway
	journal *journal.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(gateway repository.Gateway, jr *journal.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		gateway:  gateway,
		journal:  jr,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

// IsOnline reports whether the gateway answered the last health check.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	journalOK, backlog := m.checkJournal()
	status := Status{
		Storage:   m.checkGateway(),
		Journal:   journalOK,
		Backlog:   backlog,
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkGateway() bool {
	if m.gateway == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.gateway.Ping(ctx); err != nil {
		m.logger.Warn("gateway health check failed", zap.Error(err))
		return false
	}
	return true
}

func (m *Monitor) checkJournal() (bool, int) {
	if m.journal == nil {
		return false, 0
	}
	backlog, err := m.journal.Size()
	if err != nil {
		m.logger.Warn("journal backlog check failed", zap.Error(err))
		return false, backlog
	}
	return true, backlog
}
