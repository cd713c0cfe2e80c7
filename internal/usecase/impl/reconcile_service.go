package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	"larder/internal/usecase"

	"github.com/google/uuid"
)

const (
	// fallbackItemName labels entries built from dangling list references.
	fallbackItemName = "Unknown Item"
	// fallbackUnit is used when no pantry item supplies a unit.
	fallbackUnit = "pcs"
	// replenishQuantity replaces the stale zero quantity of an out-of-stock
	// pantry item in the shopping batch.
	replenishQuantity = 1
)

// reconcileService diffs lists against pantry snapshots and appends the
// difference to the remote shopping queue. It holds no state of its own, so
// concurrent invocations only race with the snapshot going stale.
type reconcileService struct {
	queueRepo repository.ShoppingQueueRepository
	notifier  service.Notifier
	logger    *slog.Logger
}

// NewReconcileService creates a new reconciliation service instance.
func NewReconcileService(queueRepo repository.ShoppingQueueRepository, notifier service.Notifier, logger *slog.Logger) usecase.ReconcileUsecase {
	return &reconcileService{
		queueRepo: queueRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// ComputeMissing returns the list's references whose pantry counterpart is
// absent or out of stock, in list order. A dangling reference is treated
// exactly like a zero-quantity item.
func (s *reconcileService) ComputeMissing(list *entity.CustomList, pantry []*entity.PantryItem) []string {
	index := indexPantry(pantry)

	missing := make([]string, 0, len(list.Items))
	for _, ref := range list.Items {
		item, ok := index[ref]
		if !ok || !item.InStock() {
			missing = append(missing, ref)
		}
	}

	return missing
}

// BuildShoppingBatch maps missing references to shopping queue entries. A
// known pantry item contributes its name and unit with the quantity forced
// to the replenishment quantity; a dangling reference gets the fallbacks.
func (s *reconcileService) BuildShoppingBatch(ownerID string, missing []string, pantry []*entity.PantryItem) []*entity.ShoppingQueueEntry {
	index := indexPantry(pantry)

	entries := make([]*entity.ShoppingQueueEntry, 0, len(missing))
	for _, ref := range missing {
		entry := &entity.ShoppingQueueEntry{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Name:      fallbackItemName,
			Quantity:  replenishQuantity,
			Unit:      fallbackUnit,
			Category:  entity.ShoppingCategoryGeneral,
			Checked:   false,
			CreatedAt: time.Now().UTC(),
		}
		if item, ok := index[ref]; ok {
			entry.Name = item.Name
			entry.Unit = item.Unit
		}
		entries = append(entries, entry)
	}

	return entries
}

// SendMissing computes the missing set for the list and inserts the batch.
// An empty missing set returns (0, nil) without attempting any write.
func (s *reconcileService) SendMissing(ctx context.Context, ownerID string, list *entity.CustomList, pantry []*entity.PantryItem) (int, error) {
	if ownerID == "" {
		return 0, usecase.ErrIdentityRequired
	}

	missing := s.ComputeMissing(list, pantry)
	if len(missing) == 0 {
		return 0, nil
	}

	batch := s.BuildShoppingBatch(ownerID, missing, pantry)

	return s.insert(ctx, batch)
}

// SendSelected inserts one entry per explicitly selected pantry item,
// preserving its quantity and unit. Unknown ids are skipped.
func (s *reconcileService) SendSelected(ctx context.Context, ownerID string, pantry []*entity.PantryItem, selectedIDs []string) (int, error) {
	if ownerID == "" {
		return 0, usecase.ErrIdentityRequired
	}
	if len(selectedIDs) == 0 {
		return 0, nil
	}

	index := indexPantry(pantry)

	entries := make([]*entity.ShoppingQueueEntry, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		item, ok := index[id]
		if !ok {
			continue
		}
		entries = append(entries, &entity.ShoppingQueueEntry{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  entity.ShoppingCategoryGeneral,
			Checked:   false,
			CreatedAt: time.Now().UTC(),
		})
	}

	if len(entries) == 0 {
		return 0, nil
	}

	return s.insert(ctx, entries)
}

func (s *reconcileService) insert(ctx context.Context, entries []*entity.ShoppingQueueEntry) (int, error) {
	if err := s.queueRepo.InsertEntries(ctx, entries); err != nil {
		s.notifier.Notify(service.NotificationError, "Shopping list not updated", "Could not add items to the shopping queue")

		return 0, fmt.Errorf("failed to insert shopping queue entries: %w", err)
	}

	s.notifier.Notify(service.NotificationSuccess, "Added to shopping list", fmt.Sprintf("%d item(s) queued", len(entries)))

	return len(entries), nil
}

func indexPantry(pantry []*entity.PantryItem) map[string]*entity.PantryItem {
	index := make(map[string]*entity.PantryItem, len(pantry))
	for _, item := range pantry {
		index[item.ID] = item
	}

	return index
}
