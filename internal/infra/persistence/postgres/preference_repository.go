// Package postgres contains the concrete implementation of the remote
// persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"larder/internal/domain/entity"
	"larder/internal/domain/repository"
	"larder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindInterfacePreferences retrieves the interface record for an identity.
func (repo *preferenceRepository) FindInterfacePreferences(ctx context.Context, ownerID string) (*entity.InterfacePreferences, error) {
	var prefsM model.InterfacePreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find interface preferences")
	}

	return toInterfaceDomain(&prefsM), nil
}

// UpsertInterfacePreferences replaces the full interface record for an
// identity. The record is always written whole; field-level remote updates
// are never performed.
func (repo *preferenceRepository) UpsertInterfacePreferences(ctx context.Context, prefs *entity.InterfacePreferences) error {
	prefsM := fromInterfaceDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert interface preferences")
	}

	return nil
}

// FindUserPreferences retrieves the user record for an identity.
func (repo *preferenceRepository) FindUserPreferences(ctx context.Context, ownerID string) (*entity.UserPreferences, error) {
	var prefsM model.UserPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find user preferences")
	}

	return toUserDomain(&prefsM), nil
}

// UpsertUserPreferences replaces the full user record for an identity.
func (repo *preferenceRepository) UpsertUserPreferences(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsM := fromUserDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert user preferences")
	}

	return nil
}

// --- Mapper Functions ---

func toInterfaceDomain(data *model.InterfacePreferenceModel) *entity.InterfacePreferences {
	if data == nil {
		return nil
	}

	return &entity.InterfacePreferences{
		OwnerID:           data.OwnerID,
		MobileViewMode:    entity.ViewMode(data.MobileViewMode),
		DashboardWidgets:  data.DashboardWidgets,
		AnimationLevel:    entity.AnimationLevel(data.AnimationLevel),
		GesturesEnabled:   data.GesturesEnabled,
		VoiceEnabled:      data.VoiceEnabled,
		HapticsEnabled:    data.HapticsEnabled,
		ShowTutorialHints: data.ShowTutorialHints,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromInterfaceDomain(data *entity.InterfacePreferences) *model.InterfacePreferenceModel {
	if data == nil {
		return nil
	}

	return &model.InterfacePreferenceModel{
		OwnerID:           data.OwnerID,
		MobileViewMode:    string(data.MobileViewMode),
		DashboardWidgets:  data.DashboardWidgets,
		AnimationLevel:    string(data.AnimationLevel),
		GesturesEnabled:   data.GesturesEnabled,
		VoiceEnabled:      data.VoiceEnabled,
		HapticsEnabled:    data.HapticsEnabled,
		ShowTutorialHints: data.ShowTutorialHints,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toUserDomain(data *model.UserPreferenceModel) *entity.UserPreferences {
	if data == nil {
		return nil
	}

	return &entity.UserPreferences{
		OwnerID:            data.OwnerID,
		EmailNotifications: data.EmailNotifications,
		PushNotifications:  data.PushNotifications,
		ExpiryReminderDays: data.ExpiryReminderDays,
		Theme:              entity.Theme(data.Theme),
		GroceryStoreLayout: data.GroceryStoreLayout,
		AutoAddExpiring:    data.AutoAddExpiring,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.UserPreferences) *model.UserPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.UserPreferenceModel{
		OwnerID:            data.OwnerID,
		EmailNotifications: data.EmailNotifications,
		PushNotifications:  data.PushNotifications,
		ExpiryReminderDays: data.ExpiryReminderDays,
		Theme:              string(data.Theme),
		GroceryStoreLayout: data.GroceryStoreLayout,
		AutoAddExpiring:    data.AutoAddExpiring,
		UpdatedAt:          data.UpdatedAt,
	}
}
