package repository

import (
	"context"

	"larder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPreferencesNotFound is returned when no preference record exists for an
// identity. Absence is benign; callers fall back to built-in defaults.
var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferenceRepository defines the remote record store operations for the two
// per-identity preference records. Writes are always full-record upserts;
// this core never performs field-level remote updates.
type PreferenceRepository interface {
	// FindInterfacePreferences retrieves the interface preference record for
	// an identity, or ErrPreferencesNotFound.
	FindInterfacePreferences(ctx context.Context, ownerID string) (*entity.InterfacePreferences, error)

	// UpsertInterfacePreferences writes the full interface preference record
	// keyed by its owner identity.
	UpsertInterfacePreferences(ctx context.Context, prefs *entity.InterfacePreferences) error

	// FindUserPreferences retrieves the user preference record for an
	// identity, or ErrPreferencesNotFound.
	FindUserPreferences(ctx context.Context, ownerID string) (*entity.UserPreferences, error)

	// UpsertUserPreferences writes the full user preference record keyed by
	// its owner identity.
	UpsertUserPreferences(ctx context.Context, prefs *entity.UserPreferences) error
}
