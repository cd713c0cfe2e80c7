package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"larder/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) repository.BlobStore {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "larder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBlobStore(db)
}

func TestBlobStore_Get_MissingKeyReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "custom_lists:u1")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestBlobStore_SetGet_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	payload := []byte(`[{"id":"l1","name":"Weekly"}]`)
	require.NoError(t, store.Set(ctx, "custom_lists:u1", payload))

	got, err := store.Get(ctx, "custom_lists:u1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestBlobStore_Set_OverwritesExistingKey(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "custom_lists:u1", []byte("v1")))
	require.NoError(t, store.Set(ctx, "custom_lists:u1", []byte("v2")))

	got, err := store.Get(ctx, "custom_lists:u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestBlobStore_KeysAreIsolated(t *testing.T) {
	store := openTestStore(t)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "custom_lists:u1", []byte("mine")))
	require.NoError(t, store.Set(ctx, "custom_lists:u2", []byte("theirs")))

	got, err := store.Get(ctx, "custom_lists:u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("mine"), got)
}
