package impl

import (
	"context"
	"log/slog"
	"sync"

	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"
)

// preferenceStoreFactory caches one preference store per identity. When the
// connectivity monitor signals a reconnect, every cached store refetches its
// records: fetches are the retry path after an offline window, in-flight
// writes are never replayed.
type preferenceStoreFactory struct {
	repo         repository.PreferenceRepository
	notifier     service.Notifier
	connectivity usecase.ConnectivityUsecase
	logger       *slog.Logger

	mu     sync.Mutex
	stores map[string]usecase.PreferenceStore
}

// NewPreferenceStoreFactory creates the per-identity preference store factory.
func NewPreferenceStoreFactory(repo repository.PreferenceRepository, notifier service.Notifier, connectivity usecase.ConnectivityUsecase, logger *slog.Logger) usecase.PreferenceStoreFactory {
	f := &preferenceStoreFactory{
		repo:         repo,
		notifier:     notifier,
		connectivity: connectivity,
		logger:       logger,
		stores:       make(map[string]usecase.PreferenceStore),
	}

	if connectivity != nil {
		connectivity.OnReconnect(f.refetchAll)
	}

	return f
}

func (f *preferenceStoreFactory) For(identity string) usecase.PreferenceStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if store, ok := f.stores[identity]; ok {
		return store
	}

	store := NewPreferenceStore(identity, f.repo, f.notifier, f.logger)
	f.stores[identity] = store

	return store
}

func (f *preferenceStoreFactory) refetchAll() {
	f.mu.Lock()
	stores := make([]usecase.PreferenceStore, 0, len(f.stores))
	for _, store := range f.stores {
		stores = append(stores, store)
	}
	f.mu.Unlock()

	ctx := context.Background()
	for _, store := range stores {
		if _, _, err := store.FetchInterface(ctx); err != nil {
			f.logger.Warn("interface preference refetch after reconnect failed", slog.Any("error", err))
		}
		if _, _, err := store.FetchUser(ctx); err != nil {
			f.logger.Warn("user preference refetch after reconnect failed", slog.Any("error", err))
		}
	}
}
