package repository

import (
	"context"

	"larder/internal/domain/entity"
)

// PantryRepository is the read-only view of remote pantry inventory used to
// take snapshots for reconciliation.
type PantryRepository interface {
	// FindItemsByOwner retrieves every pantry item belonging to an identity.
	FindItemsByOwner(ctx context.Context, ownerID string) ([]*entity.PantryItem, error)
}
