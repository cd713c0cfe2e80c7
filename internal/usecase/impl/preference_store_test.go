package impl

import (
	"context"
	"testing"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/domain/service"
	mockRepo "larder/internal/mocks/repository"
	"larder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// preferenceStoreFixtures holds all test dependencies for preference store tests.
type preferenceStoreFixtures struct {
	store    usecase.PreferenceStore
	repo     *mockRepo.MockPreferenceRepository
	notifier *recordingNotifier
}

func createTestPreferenceStore(t *testing.T, identity string) preferenceStoreFixtures {
	t.Helper()

	repo := mockRepo.NewMockPreferenceRepository(t)
	notifier := newRecordingNotifier()
	store := NewPreferenceStore(identity, repo, notifier, newDiscardLogger())

	return preferenceStoreFixtures{
		store:    store,
		repo:     repo,
		notifier: notifier,
	}
}

func TestPreferenceStore_FetchUser_NotFoundFallsBackToDefaults(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	fx.repo.EXPECT().
		FindUserPreferences(ctx, "u1").
		Return(nil, repository.ErrPreferencesNotFound)

	prefs, source, err := fx.store.FetchUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PreferenceSourceDefault, source)
	assert.Equal(t, entity.ThemeAuto, prefs.Theme)
	assert.Equal(t, 3, prefs.ExpiryReminderDays)

	// Absence is benign: no notification fires.
	assert.Empty(t, fx.notifier.all())
}

func TestPreferenceStore_FetchUser_TransportErrorKeepsPriorValue(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	remote := entity.DefaultUserPreferences("u1")
	remote.Theme = entity.ThemeDark

	fx.repo.EXPECT().
		FindUserPreferences(ctx, "u1").
		Return(remote, nil).
		Once()

	prefs, source, err := fx.store.FetchUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PreferenceSourceRemote, source)
	assert.Equal(t, entity.ThemeDark, prefs.Theme)

	fx.repo.EXPECT().
		FindUserPreferences(ctx, "u1").
		Return(nil, errors.New("connection refused")).
		Once()

	prefs, source, err = fx.store.FetchUser(ctx)
	assert.Error(t, err)
	assert.Equal(t, usecase.PreferenceSourceRemote, source)
	assert.Equal(t, entity.ThemeDark, prefs.Theme)
	assert.Equal(t, 1, fx.notifier.count(service.NotificationError))
}

func TestPreferenceStore_FetchInterface_NotFoundFallsBackToDefaults(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	fx.repo.EXPECT().
		FindInterfacePreferences(ctx, "u1").
		Return(nil, repository.ErrPreferencesNotFound)

	prefs, source, err := fx.store.FetchInterface(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PreferenceSourceDefault, source)
	assert.Equal(t, entity.ViewModeAdaptive, prefs.MobileViewMode)
	assert.True(t, prefs.ShowTutorialHints)
}

func TestPreferenceStore_UpdateUser_OptimisticValueRetainedOnFailure(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	fx.repo.EXPECT().
		UpsertUserPreferences(ctx, mock.Anything).
		Return(errors.New("remote write failed")).
		Once()

	theme := entity.ThemeDark
	merged, err := fx.store.UpdateUser(ctx, &entity.UserPreferencePatch{Theme: &theme})
	assert.Error(t, err)
	require.NotNil(t, merged)

	// The optimistic value is retained, the divergence window is observable
	// and exactly one error notification fired.
	assert.Equal(t, entity.ThemeDark, merged.Theme)
	assert.Equal(t, usecase.SyncStatusPending, fx.store.UserSyncStatus())
	assert.Equal(t, 1, fx.notifier.count(service.NotificationError))
}

func TestPreferenceStore_UpdateUser_SuccessClearsPendingStatus(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	fx.repo.EXPECT().
		UpsertUserPreferences(ctx, mock.Anything).
		Return(nil)

	theme := entity.ThemeLight
	merged, err := fx.store.UpdateUser(ctx, &entity.UserPreferencePatch{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, merged.Theme)
	assert.Equal(t, usecase.SyncStatusSynced, fx.store.UserSyncStatus())
	assert.Empty(t, fx.notifier.all())
}

func TestPreferenceStore_UpdateInterface_MergesPartialPatch(t *testing.T) {
	fx := createTestPreferenceStore(t, "u1")

	ctx := context.Background()
	var upserted *entity.InterfacePreferences
	fx.repo.EXPECT().
		UpsertInterfacePreferences(ctx, mock.Anything).
		Run(func(_ context.Context, prefs *entity.InterfacePreferences) {
			upserted = prefs
		}).
		Return(nil)

	mode := entity.ViewModeCompact
	merged, err := fx.store.UpdateInterface(ctx, &entity.InterfacePreferencePatch{MobileViewMode: &mode})
	require.NoError(t, err)

	// Only the patched field changed; the rest keep their defaults, and the
	// full merged record went to the remote store.
	assert.Equal(t, entity.ViewModeCompact, merged.MobileViewMode)
	assert.Equal(t, entity.AnimationLevelNormal, merged.AnimationLevel)
	assert.True(t, merged.HapticsEnabled)

	require.NotNil(t, upserted)
	assert.Equal(t, "u1", upserted.OwnerID)
	assert.Equal(t, entity.ViewModeCompact, upserted.MobileViewMode)
	assert.False(t, upserted.UpdatedAt.IsZero())
}

func TestPreferenceStoreFactory_ReconnectRefetchesCachedStores(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	notifier := newRecordingNotifier()
	reach := newFakeReachability(true)
	connectivity := NewConnectivityService(reach, &fakeUpdateWorker{}, notifier, newDiscardLogger())
	require.NoError(t, connectivity.Start(context.Background()))

	factory := NewPreferenceStoreFactory(repo, notifier, connectivity, newDiscardLogger())
	factory.For("u1")

	// The offline window ends: both records of every cached store are
	// refetched to heal any optimistic divergence.
	repo.EXPECT().
		FindInterfacePreferences(mock.Anything, "u1").
		Return(entity.DefaultInterfacePreferences("u1"), nil).
		Once()
	repo.EXPECT().
		FindUserPreferences(mock.Anything, "u1").
		Return(entity.DefaultUserPreferences("u1"), nil).
		Once()

	reach.setOnline(false)
	reach.setOnline(true)
}

func TestPreferenceStoreFactory_SameIdentityReturnsSameStore(t *testing.T) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	factory := NewPreferenceStoreFactory(repo, newRecordingNotifier(), nil, newDiscardLogger())

	assert.Same(t, factory.For("u1"), factory.For("u1"))
	assert.NotSame(t, factory.For("u1"), factory.For("u2"))
}

func TestPreferenceStore_Anonymous_TransientDefaultsOnly(t *testing.T) {
	fx := createTestPreferenceStore(t, "")

	ctx := context.Background()

	// No repository expectations: the anonymous store never touches the
	// remote record store.
	theme := entity.ThemeDark
	merged, err := fx.store.UpdateUser(ctx, &entity.UserPreferencePatch{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, merged.Theme)

	prefs, source, err := fx.store.FetchUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PreferenceSourceDefault, source)
	assert.Equal(t, entity.ThemeDark, prefs.Theme)
	assert.Empty(t, fx.notifier.all())
}
