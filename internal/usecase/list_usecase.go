// Package usecase defines the application-facing interfaces of the core
// components and their DTOs.
package usecase

import (
	"context"
	"errors"

	"larder/internal/domain/entity"
)

var (
	// ErrIdentityRequired is returned when an operation that needs a resolved
	// identity is invoked while anonymous. It is rejected before any I/O.
	ErrIdentityRequired = errors.New("identity required")

	// ErrListNotFound is returned when a list id does not resolve.
	ErrListNotFound = errors.New("list not found")
)

// ListStore maintains one identity's custom lists with offline durability.
// The whole collection is persisted as a single identity-keyed blob; local
// storage failures degrade (logged, swallowed) rather than propagate.
type ListStore interface {
	// Load deserializes the identity-scoped collection. A missing or corrupt
	// blob yields an empty collection; it never fails.
	Load(ctx context.Context) []*entity.CustomList

	// Lists returns the current in-memory collection.
	Lists() []*entity.CustomList

	// Get retrieves one list by id, or ErrListNotFound.
	Get(listID string) (*entity.CustomList, error)

	// Create constructs a list with the given name, persists the collection
	// and returns the created list. The name is accepted as-is.
	Create(ctx context.Context, name string) (*entity.CustomList, error)

	// Delete removes a list by id. An unknown id is a silent no-op.
	Delete(ctx context.Context, listID string) error

	// Rename updates a list's name. An unknown id is a silent no-op.
	Rename(ctx context.Context, listID, newName string) error

	// AddItem appends an item reference to a list. Idempotent: a duplicate
	// insert is ignored. An unknown list id is a silent no-op.
	AddItem(ctx context.Context, listID, itemID string) error

	// RemoveItem removes an item reference from a list. An absent reference
	// or unknown list id is a silent no-op.
	RemoveItem(ctx context.Context, listID, itemID string) error
}

// ListStoreFactory hands out per-identity list stores. Switching identity
// means asking for a new store; collections never leak across identities.
type ListStoreFactory interface {
	For(identity string) ListStore
}
