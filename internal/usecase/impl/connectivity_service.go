package impl

import (
	"context"
	"log/slog"
	"sync"

	"larder/internal/domain/service"
	"larder/internal/usecase"
)

// connectivityService mirrors the runtime reachability signal for the
// session. It registers exactly one listener pair for its lifetime and
// notifies once per real transition; a flicker that lands back on the
// current state fires nothing.
type connectivityService struct {
	reach    service.Reachability
	worker   service.UpdateWorker
	notifier service.Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	online      bool
	started     bool
	unsubscribe func()
	nextSubID   int
	reconnect   map[int]func()
}

// NewConnectivityService creates a new connectivity monitor instance.
func NewConnectivityService(reach service.Reachability, worker service.UpdateWorker, notifier service.Notifier, logger *slog.Logger) usecase.ConnectivityUsecase {
	return &connectivityService{
		reach:     reach,
		worker:    worker,
		notifier:  notifier,
		logger:    logger,
		reconnect: make(map[int]func()),
	}
}

// Start seeds the boolean from the live signal, registers the transition
// listener and attempts the one-shot update-worker registration. Worker
// registration failure is logged and must never block the boolean signal.
func (s *connectivityService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()

		return nil
	}
	s.started = true
	s.online = s.reach.Online()
	s.unsubscribe = s.reach.Subscribe(s.handleTransition)
	s.mu.Unlock()

	if err := s.worker.Register(ctx); err != nil {
		s.logger.Warn("update worker registration failed", slog.Any("error", err))
	}

	return nil
}

// Online reports the current reachability state.
func (s *connectivityService) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.online
}

// OnReconnect registers fn to run after every offline-to-online transition.
func (s *connectivityService) OnReconnect(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.reconnect[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.reconnect, id)
	}
}

// Close deregisters the reachability listener.
func (s *connectivityService) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (s *connectivityService) handleTransition(online bool) {
	s.mu.Lock()
	if online == s.online {
		s.mu.Unlock()

		return
	}
	s.online = online

	var subscribers []func()
	if online {
		subscribers = make([]func(), 0, len(s.reconnect))
		for _, fn := range s.reconnect {
			subscribers = append(subscribers, fn)
		}
	}
	s.mu.Unlock()

	if online {
		s.notifier.Notify(service.NotificationSuccess, "Back online", "Connection restored, syncing your data")
		for _, fn := range subscribers {
			fn()
		}
	} else {
		s.notifier.Notify(service.NotificationError, "You are offline", "Changes will be kept on this device")
	}
}
