package impl

import (
	"log/slog"
	"sync"

	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"
)

// listStoreFactory caches one list store per identity. Each identity's
// collection lives in its own store object, so signing out and back in under
// a different identity never leaks lists across keys.
type listStoreFactory struct {
	blob     repository.BlobStore
	notifier service.Notifier
	logger   *slog.Logger

	mu     sync.Mutex
	stores map[string]usecase.ListStore
}

// NewListStoreFactory creates the per-identity list store factory.
func NewListStoreFactory(blob repository.BlobStore, notifier service.Notifier, logger *slog.Logger) usecase.ListStoreFactory {
	return &listStoreFactory{
		blob:     blob,
		notifier: notifier,
		logger:   logger,
		stores:   make(map[string]usecase.ListStore),
	}
}

func (f *listStoreFactory) For(identity string) usecase.ListStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if store, ok := f.stores[identity]; ok {
		return store
	}

	store := NewListStore(identity, f.blob, f.notifier, f.logger)
	f.stores[identity] = store

	return store
}
