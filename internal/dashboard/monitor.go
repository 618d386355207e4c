package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const DefaultInterval = 2 * time.Second

type Snapshot struct {
	Metrics     Metrics       `json:"metrics"`
	Performance []Performance `json:"performance"`
	Live        bool          `json:"live"`
	Ticks       int           `json:"ticks"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Monitor owns the metrics and advances them on a ticker while live.
type Monitor struct {
	mu        sync.Mutex
	metrics   Metrics
	src       Source
	live      bool
	ticks     int
	updatedAt time.Time
	interval  time.Duration
	logger    zerolog.Logger

	ticking bool
	wake    chan struct{}
}

type MonitorOption func(*Monitor)

func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

func WithLogger(logger zerolog.Logger) MonitorOption {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// NewMonitor starts live from the initial metrics.
func NewMonitor(src Source, options ...MonitorOption) *Monitor {
	m := &Monitor{
		metrics:   Initial(),
		src:       src,
		live:      true,
		updatedAt: time.Now(),
		interval:  DefaultInterval,
		logger:    zerolog.Nop(),
		wake:      make(chan struct{}, 1),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Run ticks until ctx is done. The ticker is stopped while the monitor is not
// live and restarted when it goes live again.
func (m *Monitor) Run(ctx context.Context) error {
	var ticker *time.Ticker
	var tick <-chan time.Time
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
			m.setTicking(false)
		}
	}
	defer stop()

	for {
		switch live := m.isLive(); {
		case live && ticker == nil:
			ticker = time.NewTicker(m.interval)
			tick = ticker.C
			m.setTicking(true)
			m.logger.Info().Dur("interval", m.interval).Msg("dashboard ticker started")
		case !live && ticker != nil:
			stop()
			m.logger.Info().Msg("dashboard ticker paused")
		}

		select {
		case <-ctx.Done():
			m.logger.Info().Msg("dashboard ticker stopped")
			return nil
		case <-m.wake:
		case <-tick:
			m.Tick()
		}
	}
}

// Ticking reports whether Run currently holds a running ticker.
func (m *Monitor) Ticking() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticking
}

func (m *Monitor) setTicking(v bool) {
	m.mu.Lock()
	m.ticking = v
	m.mu.Unlock()
}

func (m *Monitor) isLive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// Tick advances the metrics once if live. It reports whether it did.
func (m *Monitor) Tick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.live {
		return false
	}
	m.metrics = m.metrics.Step(m.src)
	m.ticks++
	m.updatedAt = time.Now()
	return true
}

func (m *Monitor) SetLive(live bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == live {
		return
	}
	m.live = live
	m.logger.Info().Bool("live", live).Msg("dashboard mode changed")

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Metrics:     m.metrics,
		Performance: PerformanceRows(m.metrics),
		Live:        m.live,
		Ticks:       m.ticks,
		UpdatedAt:   m.updatedAt,
	}
}
