package usecase

import (
	"context"

	"larder/internal/domain/entity"
)

// ReconcileUsecase diffs a custom list against a pantry snapshot and pushes
// the difference into the remote shopping queue. ComputeMissing and
// BuildShoppingBatch are pure transforms over the provided snapshots; the
// Send operations are the only ones that perform remote writes.
type ReconcileUsecase interface {
	// ComputeMissing returns the list's item references whose pantry
	// counterpart is absent or has zero quantity, in list order. An empty
	// result means nothing is missing.
	ComputeMissing(list *entity.CustomList, pantry []*entity.PantryItem) []string

	// BuildShoppingBatch maps missing references to shopping queue entries.
	// A zero-quantity pantry item contributes its name and unit with the
	// quantity forced to 1; a dangling reference falls back to a sentinel
	// name and generic unit. Category is always the generic bucket.
	BuildShoppingBatch(ownerID string, missing []string, pantry []*entity.PantryItem) []*entity.ShoppingQueueEntry

	// SendMissing computes the missing set for the list and inserts the
	// resulting batch. It returns the number of entries inserted; zero with
	// a nil error means nothing was missing and no write was attempted.
	SendMissing(ctx context.Context, ownerID string, list *entity.CustomList, pantry []*entity.PantryItem) (int, error)

	// SendSelected inserts one entry per explicitly selected pantry item,
	// preserving its quantity and unit. An empty selection is a no-op.
	SendSelected(ctx context.Context, ownerID string, pantry []*entity.PantryItem, selectedIDs []string) (int, error)
}
