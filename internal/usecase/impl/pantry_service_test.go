package impl

import (
	"context"
	"testing"

	"larder/internal/domain/entity"
	mockRepo "larder/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPantryService_Snapshot_ReturnsOwnerInventory(t *testing.T) {
	repo := mockRepo.NewMockPantryRepository(t)
	svc := NewPantryService(repo)

	ctx := context.Background()
	items := []*entity.PantryItem{{ID: "milk", Name: "Milk", Quantity: 2}}
	repo.EXPECT().FindItemsByOwner(ctx, "u1").Return(items, nil)

	got, err := svc.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestPantryService_Snapshot_AnonymousIsEmpty(t *testing.T) {
	repo := mockRepo.NewMockPantryRepository(t)
	svc := NewPantryService(repo)

	got, err := svc.Snapshot(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPantryService_Snapshot_WrapsRepositoryError(t *testing.T) {
	repo := mockRepo.NewMockPantryRepository(t)
	svc := NewPantryService(repo)

	ctx := context.Background()
	repo.EXPECT().FindItemsByOwner(ctx, "u1").Return(nil, errors.New("connection refused"))

	_, err := svc.Snapshot(ctx, "u1")
	assert.ErrorContains(t, err, "failed to load pantry snapshot")
}
