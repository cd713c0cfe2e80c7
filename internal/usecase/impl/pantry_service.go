package impl

import (
	"context"
	"fmt"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/usecase"
)

type pantryService struct {
	pantryRepo repository.PantryRepository
}

// NewPantryService creates a new pantry snapshot service instance.
func NewPantryService(pantryRepo repository.PantryRepository) usecase.PantryUsecase {
	return &pantryService{pantryRepo: pantryRepo}
}

// Snapshot returns the identity's current inventory.
func (s *pantryService) Snapshot(ctx context.Context, ownerID string) ([]*entity.PantryItem, error) {
	if ownerID == "" {
		return nil, nil
	}

	items, err := s.pantryRepo.FindItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry snapshot: %w", err)
	}

	return items, nil
}
