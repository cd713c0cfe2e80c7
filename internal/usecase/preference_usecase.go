package usecase

import (
	"context"

	"larder/internal/domain/entity"
)

// PreferenceSource tells a caller whether fetched preferences came from the
// remote record store or from the built-in defaults.
type PreferenceSource string

const (
	PreferenceSourceDefault PreferenceSource = "default"
	PreferenceSourceRemote  PreferenceSource = "remote"
)

// SyncStatus models the optimistic-update divergence window: pending while
// the in-memory value is ahead of the remote record, synced otherwise.
type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending"
)

// PreferenceStore manages one identity's interface and user preference
// records. Updates apply optimistically in memory and are then upserted
// remotely; a failed upsert is reported as the returned error while the
// optimistic value is retained (no rollback).
type PreferenceStore interface {
	// FetchInterface reads the interface preference record. A missing remote
	// record resolves to defaults with PreferenceSourceDefault and no error.
	FetchInterface(ctx context.Context) (*entity.InterfacePreferences, PreferenceSource, error)

	// UpdateInterface merges the patch over the current in-memory
	// preferences and upserts the merged record remotely. The merged value
	// is returned even when the remote write failed.
	UpdateInterface(ctx context.Context, patch *entity.InterfacePreferencePatch) (*entity.InterfacePreferences, error)

	// FetchUser reads the user preference record with the same absence
	// semantics as FetchInterface.
	FetchUser(ctx context.Context) (*entity.UserPreferences, PreferenceSource, error)

	// UpdateUser merges the patch over the current in-memory preferences and
	// upserts the merged record remotely.
	UpdateUser(ctx context.Context, patch *entity.UserPreferencePatch) (*entity.UserPreferences, error)

	// InterfaceSyncStatus reports whether the interface record has pending
	// remote divergence.
	InterfaceSyncStatus() SyncStatus

	// UserSyncStatus reports whether the user record has pending remote
	// divergence.
	UserSyncStatus() SyncStatus
}

// PreferenceStoreFactory hands out per-identity preference stores. The
// anonymous identity gets a transient defaults-only store that never touches
// the remote record store.
type PreferenceStoreFactory interface {
	For(identity string) PreferenceStore
}
