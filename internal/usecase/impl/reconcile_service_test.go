package impl

import (
	"context"
	"testing"
	"time"

	"larder/internal/domain/entity"
	"larder/internal/domain/service"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcileFixtures struct {
	service   usecase.ReconcileUsecase
	queueRepo *mockRepo.MockShoppingQueueRepository
	notifier  *recordingNotifier
}

func createTestReconcileService(t *testing.T) reconcileFixtures {
	t.Helper()

	queueRepo := mockRepo.NewMockShoppingQueueRepository(t)
	notifier := newRecordingNotifier()
	svc := NewReconcileService(queueRepo, notifier, newDiscardLogger())

	return reconcileFixtures{
		service:   svc,
		queueRepo: queueRepo,
		notifier:  notifier,
	}
}

func testPantry() []*entity.PantryItem {
	return []*entity.PantryItem{
		{ID: "milk", Name: "Milk", Quantity: 2, Unit: "l", Category: entity.StorageCategoryFridge},
		{ID: "eggs", Name: "Eggs", Quantity: 0, Unit: "pcs", Category: entity.StorageCategoryFridge},
		{ID: "flour", Name: "Flour", Quantity: 1.5, Unit: "kg", Category: entity.StorageCategoryPantry},
	}
}

func TestReconcileService_ComputeMissing_AbsentAndOutOfStock(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{
		ID:    "list-1",
		Name:  "Weekly bake",
		Items: []string{"eggs", "milk", "butter", "flour"},
	}

	missing := fx.service.ComputeMissing(list, testPantry())

	// eggs is out of stock, butter is a dangling reference; milk and flour
	// are in stock. Order follows the list.
	assert.Equal(t, []string{"eggs", "butter"}, missing)
}

func TestReconcileService_ComputeMissing_EmptyListYieldsEmptySet(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{ID: "list-1", Name: "Empty"}

	missing := fx.service.ComputeMissing(list, testPantry())
	assert.Empty(t, missing)
}

func TestReconcileService_BuildShoppingBatch_FallbacksForDanglingRefs(t *testing.T) {
	fx := createTestReconcileService(t)

	entries := fx.service.BuildShoppingBatch("u1", []string{"eggs", "butter"}, testPantry())
	require.Len(t, entries, 2)

	// A known out-of-stock item reuses name and unit but replaces the stale
	// zero quantity with the replenishment quantity.
	assert.Equal(t, "Eggs", entries[0].Name)
	assert.Equal(t, "pcs", entries[0].Unit)
	assert.Equal(t, float64(1), entries[0].Quantity)

	// A dangling reference gets the fallbacks.
	assert.Equal(t, "Unknown Item", entries[1].Name)
	assert.Equal(t, "pcs", entries[1].Unit)
	assert.Equal(t, float64(1), entries[1].Quantity)

	for _, entry := range entries {
		assert.Equal(t, "u1", entry.OwnerID)
		assert.Equal(t, entity.ShoppingCategoryGeneral, entry.Category)
		assert.False(t, entry.Checked)
		assert.NotEmpty(t, entry.ID)
		assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Minute)
	}
}

func TestReconcileService_SendMissing_InsertsBatchAndNotifies(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{
		ID:    "list-1",
		Name:  "Weekly bake",
		Items: []string{"eggs", "butter", "milk"},
	}

	ctx := context.Background()
	var inserted []*entity.ShoppingQueueEntry
	fx.queueRepo.EXPECT().
		InsertEntries(ctx, mock.Anything).
		Run(func(_ context.Context, entries []*entity.ShoppingQueueEntry) {
			inserted = entries
		}).
		Return(nil)

	count, err := fx.service.SendMissing(ctx, "u1", list, testPantry())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, inserted, 2)
	assert.Equal(t, "Eggs", inserted[0].Name)
	assert.Equal(t, "Unknown Item", inserted[1].Name)
	assert.Equal(t, 1, fx.notifier.count(service.NotificationSuccess))
}

func TestReconcileService_SendMissing_NothingMissingSkipsWrite(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{
		ID:    "list-1",
		Name:  "Covered",
		Items: []string{"milk", "flour"},
	}

	// No InsertEntries expectation: an empty missing set never reaches the
	// queue.
	count, err := fx.service.SendMissing(context.Background(), "u1", list, testPantry())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, fx.notifier.all())
}

func TestReconcileService_SendMissing_RequiresIdentity(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{ID: "list-1", Name: "Weekly bake", Items: []string{"eggs"}}

	count, err := fx.service.SendMissing(context.Background(), "", list, testPantry())
	assert.ErrorIs(t, err, usecase.ErrIdentityRequired)
	assert.Zero(t, count)
}

func TestReconcileService_SendMissing_InsertFailureNotifiesOnce(t *testing.T) {
	fx := createTestReconcileService(t)

	list := &entity.CustomList{ID: "list-1", Name: "Weekly bake", Items: []string{"eggs"}}

	ctx := context.Background()
	fx.queueRepo.EXPECT().
		InsertEntries(ctx, mock.Anything).
		Return(errors.New("queue unavailable"))

	count, err := fx.service.SendMissing(ctx, "u1", list, testPantry())
	assert.Error(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, fx.notifier.count(service.NotificationError))
	assert.Zero(t, fx.notifier.count(service.NotificationSuccess))
}

func TestReconcileService_SendSelected_PreservesQuantityAndUnit(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	var inserted []*entity.ShoppingQueueEntry
	fx.queueRepo.EXPECT().
		InsertEntries(ctx, mock.Anything).
		Run(func(_ context.Context, entries []*entity.ShoppingQueueEntry) {
			inserted = entries
		}).
		Return(nil)

	count, err := fx.service.SendSelected(ctx, "u1", testPantry(), []string{"flour", "milk"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, inserted, 2)

	assert.Equal(t, "Flour", inserted[0].Name)
	assert.Equal(t, 1.5, inserted[0].Quantity)
	assert.Equal(t, "kg", inserted[0].Unit)
	assert.Equal(t, "Milk", inserted[1].Name)
	assert.Equal(t, float64(2), inserted[1].Quantity)
	assert.False(t, inserted[0].Checked)
}

func TestReconcileService_SendSelected_SkipsUnknownIDs(t *testing.T) {
	fx := createTestReconcileService(t)

	// Only unknown ids selected: nothing to insert, no write attempted.
	count, err := fx.service.SendSelected(context.Background(), "u1", testPantry(), []string{"ghost", "phantom"})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReconcileService_SendSelected_EmptySelectionIsNoOp(t *testing.T) {
	fx := createTestReconcileService(t)

	count, err := fx.service.SendSelected(context.Background(), "u1", testPantry(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}
