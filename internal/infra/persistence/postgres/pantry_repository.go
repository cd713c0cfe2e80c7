package postgres

import (
	"context"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pantryRepository implements the repository.PantryRepository interface.
type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository is the constructor for pantryRepository.
func NewPantryRepository(db *gorm.DB) repository.PantryRepository {
	return &pantryRepository{
		db: db,
	}
}

// FindItemsByOwner retrieves the full inventory snapshot for an identity.
func (repo *pantryRepository) FindItemsByOwner(ctx context.Context, ownerID string) ([]*entity.PantryItem, error) {
	var itemModels []*model.PantryItemModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pantry items by owner")
	}

	items := make([]*entity.PantryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toPantryDomain(itemM))
	}

	return items, nil
}

func toPantryDomain(data *model.PantryItemModel) *entity.PantryItem {
	if data == nil {
		return nil
	}

	return &entity.PantryItem{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		Unit:       data.Unit,
		Category:   entity.StorageCategory(data.Category),
		ExpiryDate: data.ExpiryDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
