// Package reachability probes a well-known endpoint to decide whether the
// device currently has network connectivity.
package reachability

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"larder/config"
	"larder/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultProbeAddr     = "1.1.1.1:443"
	defaultProbeInterval = 15 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type monitor struct {
	addr     string
	interval time.Duration
	timeout  time.Duration
	dial     func(ctx context.Context, addr string) error
	logger   *slog.Logger

	mu          sync.Mutex
	online      bool
	nextSubID   int
	subscribers map[int]func(bool)

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates the probe-based reachability monitor and hooks its probe loop
// into the application lifecycle. The first probe runs synchronously on
// start so consumers never observe an unseeded signal.
func New(params Params) service.Reachability {
	m := newMonitor(params.Config.Reachability, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			m.start(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.stop(ctx)
		},
	})

	return m
}

func newMonitor(cfg *config.ReachabilityConfig, logger *slog.Logger) *monitor {
	m := &monitor{
		addr:        defaultProbeAddr,
		interval:    defaultProbeInterval,
		timeout:     defaultProbeTimeout,
		logger:      logger,
		subscribers: make(map[int]func(bool)),
	}
	m.dial = m.dialProbe

	if cfg != nil {
		if cfg.ProbeAddr != "" {
			m.addr = cfg.ProbeAddr
		}
		if cfg.ProbeInterval > 0 {
			m.interval = cfg.ProbeInterval
		}
		if cfg.ProbeTimeout > 0 {
			m.timeout = cfg.ProbeTimeout
		}
	}

	return m
}

// Online reports the result of the most recent probe.
func (m *monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.online
}

// Subscribe registers fn for transition events. The returned function
// deregisters it.
func (m *monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		delete(m.subscribers, id)
	}
}

func (m *monitor) start(ctx context.Context) {
	m.probe(ctx)

	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.loop(loopCtx)
}

func (m *monitor) stop(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *monitor) loop(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// probe dials the probe address once and fans out the state to subscribers
// when it differs from the previous probe.
func (m *monitor) probe(ctx context.Context) {
	dialCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	online := m.dial(dialCtx, m.addr) == nil

	m.mu.Lock()
	changed := online != m.online
	m.online = online
	var fns []func(bool)
	if changed {
		fns = make([]func(bool), 0, len(m.subscribers))
		for _, fn := range m.subscribers {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info("reachability changed",
		slog.Bool("online", online),
		slog.String("probeAddr", m.addr),
	)

	for _, fn := range fns {
		fn(online)
	}
}

func (m *monitor) dialProbe(ctx context.Context, addr string) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	return conn.Close()
}
