// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"

	"github.com/google/uuid"
)

const listBlobKeyPrefix = "custom_lists:"

// listStore owns one identity's custom lists. Every mutation runs a
// compute-persist-swap cycle under the store's lock: the new collection is
// computed, the whole collection is written to the blob store, then the
// in-memory view is replaced. Local storage failures are logged and swallowed
// so the in-memory view keeps working offline; the next successful persist
// rewrites the entire collection and heals any divergence.
type listStore struct {
	identity string
	blob     repository.BlobStore
	notifier service.Notifier
	logger   *slog.Logger

	mu     sync.Mutex
	lists  []*entity.CustomList
	loaded bool
}

// NewListStore creates a list store bound to one identity. The anonymous
// identity (empty string) yields a store that rejects mutations and loads an
// empty collection, since persistence is disabled without an identity.
func NewListStore(identity string, blob repository.BlobStore, notifier service.Notifier, logger *slog.Logger) usecase.ListStore {
	return &listStore{
		identity: identity,
		blob:     blob,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *listStore) blobKey() string {
	return listBlobKeyPrefix + s.identity
}

// Load re-reads the identity-scoped blob, replacing the in-memory view.
func (s *listStore) Load(ctx context.Context) []*entity.CustomList {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)

	return cloneLists(s.lists)
}

// loadLocked deserializes the blob into memory. A missing or corrupt blob
// yields an empty collection; failures are logged, never surfaced.
func (s *listStore) loadLocked(ctx context.Context) {
	s.loaded = true
	s.lists = nil

	if s.identity == "" {
		return
	}

	data, err := s.blob.Get(ctx, s.blobKey())
	if err != nil {
		if !errors.Is(err, repository.ErrBlobNotFound) {
			s.logger.Warn("failed to read list collection, starting empty",
				slog.String("key", s.blobKey()),
				slog.Any("error", err),
			)
		}

		return
	}

	var lists []*entity.CustomList
	if err := json.Unmarshal(data, &lists); err != nil {
		s.logger.Warn("corrupt list collection blob, starting empty",
			slog.String("key", s.blobKey()),
			slog.Any("error", err),
		)

		return
	}

	s.lists = lists
}

func (s *listStore) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		s.loadLocked(ctx)
	}
}

// Lists returns the current in-memory collection.
func (s *listStore) Lists() []*entity.CustomList {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(context.Background())

	return cloneLists(s.lists)
}

// Get retrieves one list by id.
func (s *listStore) Get(listID string) (*entity.CustomList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(context.Background())

	for _, list := range s.lists {
		if list.ID == listID {
			return list.Clone(), nil
		}
	}

	return nil, usecase.ErrListNotFound
}

// Create constructs a new list and persists the grown collection.
func (s *listStore) Create(ctx context.Context, name string) (*entity.CustomList, error) {
	if s.identity == "" {
		return nil, usecase.ErrIdentityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	now := time.Now().UTC()
	list := &entity.CustomList{
		ID:        newListID(),
		Name:      name,
		Items:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(cloneLists(s.lists), list)
	persisted := s.persistLocked(ctx, next)
	s.lists = next

	if persisted {
		s.notifier.Notify(service.NotificationSuccess, "List created", name)
	}

	return list.Clone(), nil
}

// Delete removes a list by id. An unknown id persists the unchanged
// collection without notifying.
func (s *listStore) Delete(ctx context.Context, listID string) error {
	if s.identity == "" {
		return usecase.ErrIdentityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	var removed *entity.CustomList
	next := make([]*entity.CustomList, 0, len(s.lists))
	for _, list := range s.lists {
		if list.ID == listID {
			removed = list

			continue
		}
		next = append(next, list)
	}

	persisted := s.persistLocked(ctx, next)
	s.lists = next

	if removed != nil && persisted {
		s.notifier.Notify(service.NotificationSuccess, "List deleted", removed.Name)
	}

	return nil
}

// Rename updates a list's name and refreshes its updatedAt.
func (s *listStore) Rename(ctx context.Context, listID, newName string) error {
	return s.mutateList(ctx, listID, func(list *entity.CustomList) bool {
		list.Name = newName

		return true
	}, func(list *entity.CustomList) {
		s.notifier.Notify(service.NotificationSuccess, "List renamed", newName)
	})
}

// AddItem appends an item reference. A duplicate insert is ignored.
func (s *listStore) AddItem(ctx context.Context, listID, itemID string) error {
	return s.mutateList(ctx, listID, func(list *entity.CustomList) bool {
		if list.HasItem(itemID) {
			return false
		}
		list.Items = append(list.Items, itemID)

		return true
	}, nil)
}

// RemoveItem removes an item reference. An absent reference is a no-op.
func (s *listStore) RemoveItem(ctx context.Context, listID, itemID string) error {
	return s.mutateList(ctx, listID, func(list *entity.CustomList) bool {
		for i, ref := range list.Items {
			if ref == itemID {
				list.Items = append(list.Items[:i], list.Items[i+1:]...)

				return true
			}
		}

		return false
	}, nil)
}

// mutateList runs apply against a clone of the addressed list. When apply
// reports a change, the list's updatedAt is refreshed and the new collection
// is persisted and swapped in. Unknown ids and no-op mutations leave the
// collection untouched.
func (s *listStore) mutateList(ctx context.Context, listID string, apply func(*entity.CustomList) bool, onSuccess func(*entity.CustomList)) error {
	if s.identity == "" {
		return usecase.ErrIdentityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	next := cloneLists(s.lists)
	for i, list := range next {
		if list.ID != listID {
			continue
		}

		changed := next[i]
		if !apply(changed) {
			return nil
		}
		changed.UpdatedAt = time.Now().UTC()

		persisted := s.persistLocked(ctx, next)
		s.lists = next

		if persisted && onSuccess != nil {
			onSuccess(changed)
		}

		return nil
	}

	return nil
}

// persistLocked serializes the whole collection under the identity key.
// Failures are logged and reported to the caller but never propagated.
func (s *listStore) persistLocked(ctx context.Context, lists []*entity.CustomList) bool {
	data, err := json.Marshal(lists)
	if err != nil {
		s.logger.Warn("failed to serialize list collection",
			slog.String("key", s.blobKey()),
			slog.Any("error", err),
		)

		return false
	}

	if err := s.blob.Set(ctx, s.blobKey(), data); err != nil {
		s.logger.Warn("failed to persist list collection",
			slog.String("key", s.blobKey()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// newListID returns a time-ordered id so ids created on the same device stay
// monotonic and unique even under rapid creation.
func newListID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return id.String()
}

func cloneLists(lists []*entity.CustomList) []*entity.CustomList {
	cloned := make([]*entity.CustomList, 0, len(lists))
	for _, list := range lists {
		cloned = append(cloned, list.Clone())
	}

	return cloned
}
