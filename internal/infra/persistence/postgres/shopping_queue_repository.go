package postgres

import (
	"context"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shoppingQueueRepository implements the repository.ShoppingQueueRepository interface.
type shoppingQueueRepository struct {
	db *gorm.DB
}

// NewShoppingQueueRepository is the constructor for shoppingQueueRepository.
func NewShoppingQueueRepository(db *gorm.DB) repository.ShoppingQueueRepository {
	return &shoppingQueueRepository{
		db: db,
	}
}

// InsertEntries appends a batch of entries to the shopping queue. The queue
// is shared with other application features, so this repository only ever
// inserts; it never updates or deletes existing rows.
func (repo *shoppingQueueRepository) InsertEntries(ctx context.Context, entries []*entity.ShoppingQueueEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.ShoppingQueueModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, fromShoppingDomain(entry))
	}

	if err := repo.db.WithContext(ctx).Create(entryModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert shopping queue entries")
	}

	return nil
}

func fromShoppingDomain(data *entity.ShoppingQueueEntry) *model.ShoppingQueueModel {
	if data == nil {
		return nil
	}

	return &model.ShoppingQueueModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Unit:      data.Unit,
		Category:  data.Category,
		Checked:   data.Checked,
		CreatedAt: data.CreatedAt,
	}
}
