package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/todoclient/api/gateway"
	"github.com/fastygo/todoclient/store"
)

// Monitor periodically probes the remote API and tracks reachability
// and session validity. The background refresher consults it before
// pulling snapshots.
type Monitor struct {
	gw      *gateway.Client
	session *store.Session

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(gw *gateway.Client, session *store.Session, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		gw:       gw,
		session:  session,
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

// IsOnline reports whether the API answered the last probe at all,
// regardless of whether the session token is still accepted.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.API
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Probe runs one check synchronously and records the result.
func (m *Monitor) Probe(ctx context.Context) Status {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := Status{LastCheck: time.Now()}
	resp, err := m.gw.CheckAuth(probeCtx, m.session.Token())
	if err != nil {
		m.logger.Debug("api probe failed", zap.Error(err))
	} else {
		status.API = true
		status.Authenticated = resp.OK()
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Probe(context.Background())
	for {
		select {
		case <-ticker.C:
			m.Probe(context.Background())
		case <-m.stopCh:
			return
		}
	}
}
