package impl

import (
	"context"
	"testing"

	"larder/internal/domain/service"
	"larder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type connectivityFixtures struct {
	service  usecase.ConnectivityUsecase
	reach    *fakeReachability
	worker   *fakeUpdateWorker
	notifier *recordingNotifier
}

func createTestConnectivityService(t *testing.T, online bool) connectivityFixtures {
	t.Helper()

	reach := newFakeReachability(online)
	worker := &fakeUpdateWorker{}
	notifier := newRecordingNotifier()
	svc := NewConnectivityService(reach, worker, notifier, newDiscardLogger())

	return connectivityFixtures{
		service:  svc,
		reach:    reach,
		worker:   worker,
		notifier: notifier,
	}
}

func TestConnectivityService_Start_SeedsFromLiveSignal(t *testing.T) {
	fx := createTestConnectivityService(t, true)

	require.NoError(t, fx.service.Start(context.Background()))
	assert.True(t, fx.service.Online())
	assert.Equal(t, 1, fx.reach.subscriberCount())
	assert.Equal(t, 1, fx.worker.registerCount())
	assert.Empty(t, fx.notifier.all())
}

func TestConnectivityService_Start_Idempotent(t *testing.T) {
	fx := createTestConnectivityService(t, true)

	ctx := context.Background()
	require.NoError(t, fx.service.Start(ctx))
	require.NoError(t, fx.service.Start(ctx))

	assert.Equal(t, 1, fx.reach.subscriberCount())
	assert.Equal(t, 1, fx.worker.registerCount())
}

func TestConnectivityService_Start_WorkerFailureIsNotFatal(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	fx.worker.err = errors.New("registration endpoint unreachable")

	require.NoError(t, fx.service.Start(context.Background()))
	assert.True(t, fx.service.Online())
	assert.Equal(t, 1, fx.reach.subscriberCount())
}

func TestConnectivityService_RoundTrip_NotifiesOncePerTransition(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	require.NoError(t, fx.service.Start(context.Background()))

	fx.reach.setOnline(false)
	fx.reach.setOnline(true)

	calls := fx.notifier.all()
	require.Len(t, calls, 2)
	assert.Equal(t, service.NotificationError, calls[0].kind)
	assert.Equal(t, "You are offline", calls[0].title)
	assert.Equal(t, service.NotificationSuccess, calls[1].kind)
	assert.Equal(t, "Back online", calls[1].title)
}

func TestConnectivityService_Flicker_SameStateFiresNothing(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	require.NoError(t, fx.service.Start(context.Background()))

	// The runtime may redeliver the current state; only real transitions
	// notify.
	fx.reach.setOnline(true)
	fx.reach.setOnline(true)
	assert.Empty(t, fx.notifier.all())

	fx.reach.setOnline(false)
	fx.reach.setOnline(false)
	assert.Equal(t, 1, fx.notifier.count(service.NotificationError))
}

func TestConnectivityService_OnReconnect_RunsAfterOfflineOnline(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	require.NoError(t, fx.service.Start(context.Background()))

	runs := 0
	fx.service.OnReconnect(func() { runs++ })

	fx.reach.setOnline(false)
	assert.Zero(t, runs)

	fx.reach.setOnline(true)
	assert.Equal(t, 1, runs)

	fx.reach.setOnline(false)
	fx.reach.setOnline(true)
	assert.Equal(t, 2, runs)
}

func TestConnectivityService_OnReconnect_UnsubscribeStopsDelivery(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	require.NoError(t, fx.service.Start(context.Background()))

	runs := 0
	unsubscribe := fx.service.OnReconnect(func() { runs++ })

	fx.reach.setOnline(false)
	fx.reach.setOnline(true)
	require.Equal(t, 1, runs)

	unsubscribe()
	fx.reach.setOnline(false)
	fx.reach.setOnline(true)
	assert.Equal(t, 1, runs)
}

func TestConnectivityService_Close_Deregisters(t *testing.T) {
	fx := createTestConnectivityService(t, true)
	require.NoError(t, fx.service.Start(context.Background()))
	require.Equal(t, 1, fx.reach.subscriberCount())

	fx.service.Close()
	assert.Zero(t, fx.reach.subscriberCount())

	fx.reach.setOnline(false)
	assert.Empty(t, fx.notifier.all())
}
