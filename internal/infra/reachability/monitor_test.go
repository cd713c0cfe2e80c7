package reachability

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"larder/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDialer struct {
	mu  sync.Mutex
	err error
}

func (d *scriptedDialer) dial(context.Context, string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.err
}

func (d *scriptedDialer) setErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.err = err
}

func createTestMonitor(t *testing.T) (*monitor, *scriptedDialer) {
	t.Helper()

	cfg := &config.ReachabilityConfig{
		ProbeAddr:     "probe.test:443",
		ProbeInterval: time.Hour,
		ProbeTimeout:  time.Second,
	}
	m := newMonitor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	dialer := &scriptedDialer{}
	m.dial = dialer.dial

	return m, dialer
}

func TestMonitor_Probe_SeedsOnlineState(t *testing.T) {
	m, _ := createTestMonitor(t)

	require.False(t, m.Online())

	m.probe(context.Background())
	assert.True(t, m.Online())
}

func TestMonitor_Probe_DialFailureMeansOffline(t *testing.T) {
	m, dialer := createTestMonitor(t)
	dialer.setErr(errors.New("network unreachable"))

	m.probe(context.Background())
	assert.False(t, m.Online())
}

func TestMonitor_Subscribe_TransitionsFanOut(t *testing.T) {
	m, dialer := createTestMonitor(t)

	var transitions []bool
	m.Subscribe(func(online bool) {
		transitions = append(transitions, online)
	})

	ctx := context.Background()
	m.probe(ctx)
	dialer.setErr(errors.New("network unreachable"))
	m.probe(ctx)
	dialer.setErr(nil)
	m.probe(ctx)

	assert.Equal(t, []bool{true, false, true}, transitions)
}

func TestMonitor_Subscribe_SteadyStateFiresNothing(t *testing.T) {
	m, _ := createTestMonitor(t)

	fired := 0
	m.Subscribe(func(bool) { fired++ })

	ctx := context.Background()
	m.probe(ctx)
	m.probe(ctx)
	m.probe(ctx)

	assert.Equal(t, 1, fired)
}

func TestMonitor_Unsubscribe_StopsDelivery(t *testing.T) {
	m, dialer := createTestMonitor(t)

	fired := 0
	unsubscribe := m.Subscribe(func(bool) { fired++ })

	ctx := context.Background()
	m.probe(ctx)
	require.Equal(t, 1, fired)

	unsubscribe()
	dialer.setErr(errors.New("network unreachable"))
	m.probe(ctx)
	assert.Equal(t, 1, fired)
}

func TestMonitor_ConfigDefaults(t *testing.T) {
	m := newMonitor(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, defaultProbeAddr, m.addr)
	assert.Equal(t, defaultProbeInterval, m.interval)
	assert.Equal(t, defaultProbeTimeout, m.timeout)
}
