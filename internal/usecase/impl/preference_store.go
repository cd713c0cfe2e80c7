package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"
)

// preferenceStore manages one identity's two preference records with
// optimistic local application. A failed remote upsert keeps the optimistic
// in-memory value (no rollback) and flips the record's sync status to
// pending; the next successful update or fetch heals the divergence.
type preferenceStore struct {
	identity string
	repo     repository.PreferenceRepository
	notifier service.Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	iface       *entity.InterfacePreferences
	ifaceSource usecase.PreferenceSource
	ifaceStatus usecase.SyncStatus
	user        *entity.UserPreferences
	userSource  usecase.PreferenceSource
	userStatus  usecase.SyncStatus
}

// NewPreferenceStore creates a preference store bound to one identity. The
// anonymous identity gets transient in-memory defaults and never touches the
// remote record store.
func NewPreferenceStore(identity string, repo repository.PreferenceRepository, notifier service.Notifier, logger *slog.Logger) usecase.PreferenceStore {
	return &preferenceStore{
		identity:    identity,
		repo:        repo,
		notifier:    notifier,
		logger:      logger,
		iface:       entity.DefaultInterfacePreferences(identity),
		ifaceSource: usecase.PreferenceSourceDefault,
		ifaceStatus: usecase.SyncStatusSynced,
		user:        entity.DefaultUserPreferences(identity),
		userSource:  usecase.PreferenceSourceDefault,
		userStatus:  usecase.SyncStatusSynced,
	}
}

// FetchInterface reads the remote interface record. Absence is benign and
// resolves to defaults; any other failure leaves the in-memory value at its
// prior state and surfaces a recoverable error.
func (s *preferenceStore) FetchInterface(ctx context.Context) (*entity.InterfacePreferences, usecase.PreferenceSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == "" {
		return clonePrefs(s.iface), s.ifaceSource, nil
	}

	prefs, err := s.repo.FindInterfacePreferences(ctx, s.identity)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			s.iface = entity.DefaultInterfacePreferences(s.identity)
			s.ifaceSource = usecase.PreferenceSourceDefault
			s.ifaceStatus = usecase.SyncStatusSynced

			return clonePrefs(s.iface), s.ifaceSource, nil
		}

		s.notifier.Notify(service.NotificationError, "Preferences unavailable", "Could not load interface preferences")

		return clonePrefs(s.iface), s.ifaceSource, fmt.Errorf("failed to fetch interface preferences: %w", err)
	}

	s.iface = prefs
	s.ifaceSource = usecase.PreferenceSourceRemote
	s.ifaceStatus = usecase.SyncStatusSynced

	return clonePrefs(s.iface), s.ifaceSource, nil
}

// UpdateInterface merges the patch over the in-memory record, applies it
// optimistically, then upserts the full merged record remotely.
func (s *preferenceStore) UpdateInterface(ctx context.Context, patch *entity.InterfacePreferencePatch) (*entity.InterfacePreferences, error) {
	s.mu.Lock()
	merged := patch.Apply(s.iface)
	merged.OwnerID = s.identity
	merged.UpdatedAt = time.Now().UTC()
	s.iface = merged

	if s.identity == "" {
		s.mu.Unlock()

		return clonePrefs(merged), nil
	}

	s.ifaceStatus = usecase.SyncStatusPending
	s.mu.Unlock()

	if err := s.repo.UpsertInterfacePreferences(ctx, merged); err != nil {
		s.notifier.Notify(service.NotificationError, "Preferences not saved", "Interface preferences will retry on your next change")

		return clonePrefs(merged), fmt.Errorf("failed to upsert interface preferences: %w", err)
	}

	s.mu.Lock()
	s.ifaceSource = usecase.PreferenceSourceRemote
	s.ifaceStatus = usecase.SyncStatusSynced
	s.mu.Unlock()

	return clonePrefs(merged), nil
}

// FetchUser reads the remote user record with the same semantics as
// FetchInterface.
func (s *preferenceStore) FetchUser(ctx context.Context) (*entity.UserPreferences, usecase.PreferenceSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == "" {
		return cloneUserPrefs(s.user), s.userSource, nil
	}

	prefs, err := s.repo.FindUserPreferences(ctx, s.identity)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			s.user = entity.DefaultUserPreferences(s.identity)
			s.userSource = usecase.PreferenceSourceDefault
			s.userStatus = usecase.SyncStatusSynced

			return cloneUserPrefs(s.user), s.userSource, nil
		}

		s.notifier.Notify(service.NotificationError, "Preferences unavailable", "Could not load user preferences")

		return cloneUserPrefs(s.user), s.userSource, fmt.Errorf("failed to fetch user preferences: %w", err)
	}

	s.user = prefs
	s.userSource = usecase.PreferenceSourceRemote
	s.userStatus = usecase.SyncStatusSynced

	return cloneUserPrefs(s.user), s.userSource, nil
}

// UpdateUser merges the patch over the in-memory record, applies it
// optimistically, then upserts the full merged record remotely.
func (s *preferenceStore) UpdateUser(ctx context.Context, patch *entity.UserPreferencePatch) (*entity.UserPreferences, error) {
	s.mu.Lock()
	merged := patch.Apply(s.user)
	merged.OwnerID = s.identity
	merged.UpdatedAt = time.Now().UTC()
	s.user = merged

	if s.identity == "" {
		s.mu.Unlock()

		return cloneUserPrefs(merged), nil
	}

	s.userStatus = usecase.SyncStatusPending
	s.mu.Unlock()

	if err := s.repo.UpsertUserPreferences(ctx, merged); err != nil {
		s.notifier.Notify(service.NotificationError, "Preferences not saved", "User preferences will retry on your next change")

		return cloneUserPrefs(merged), fmt.Errorf("failed to upsert user preferences: %w", err)
	}

	s.mu.Lock()
	s.userSource = usecase.PreferenceSourceRemote
	s.userStatus = usecase.SyncStatusSynced
	s.mu.Unlock()

	return cloneUserPrefs(merged), nil
}

// InterfaceSyncStatus reports the interface record's divergence window.
func (s *preferenceStore) InterfaceSyncStatus() usecase.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ifaceStatus
}

// UserSyncStatus reports the user record's divergence window.
func (s *preferenceStore) UserSyncStatus() usecase.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userStatus
}

func clonePrefs(prefs *entity.InterfacePreferences) *entity.InterfacePreferences {
	patch := &entity.InterfacePreferencePatch{}

	return patch.Apply(prefs)
}

func cloneUserPrefs(prefs *entity.UserPreferences) *entity.UserPreferences {
	patch := &entity.UserPreferencePatch{}

	return patch.Apply(prefs)
}
