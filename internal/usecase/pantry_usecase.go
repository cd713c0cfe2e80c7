package usecase

import (
	"context"

	"larder/internal/domain/entity"
)

// PantryUsecase exposes read-only inventory snapshots. The pantry is owned
// by the remote store; this service never mutates it.
type PantryUsecase interface {
	// Snapshot returns the identity's current inventory. An anonymous
	// identity has no remote inventory and gets an empty snapshot.
	Snapshot(ctx context.Context, ownerID string) ([]*entity.PantryItem, error)
}
