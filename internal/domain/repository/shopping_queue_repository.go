package repository

import (
	"context"

	"larder/internal/domain/entity"
)

// ShoppingQueueRepository is the write-only remote shopping queue. This core
// only ever performs additive batch inserts against it.
type ShoppingQueueRepository interface {
	// InsertEntries appends the given entries to the shopping queue.
	InsertEntries(ctx context.Context, entries []*entity.ShoppingQueueEntry) error
}
