package model

import (
	"time"
)

// InterfacePreferenceModel is the GORM-specific struct for the
// 'interface_preferences' table. One row per identity, replaced wholesale on
// every upsert.
type InterfacePreferenceModel struct {
	OwnerID           string    `gorm:"type:varchar(64);primary_key"`
	MobileViewMode    string    `gorm:"type:varchar(20);not null"`
	DashboardWidgets  []string  `gorm:"type:jsonb;serializer:json"`
	AnimationLevel    string    `gorm:"type:varchar(20);not null"`
	GesturesEnabled   bool      `gorm:"not null;default:true"`
	VoiceEnabled      bool      `gorm:"not null;default:false"`
	HapticsEnabled    bool      `gorm:"not null;default:true"`
	ShowTutorialHints bool      `gorm:"not null;default:true"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InterfacePreferenceModel) TableName() string {
	return "interface_preferences"
}

// UserPreferenceModel is the GORM-specific struct for the 'user_preferences'
// table. One row per identity, replaced wholesale on every upsert.
type UserPreferenceModel struct {
	OwnerID            string    `gorm:"type:varchar(64);primary_key"`
	EmailNotifications bool      `gorm:"not null;default:true"`
	PushNotifications  bool      `gorm:"not null;default:true"`
	ExpiryReminderDays int       `gorm:"not null;default:3"`
	Theme              string    `gorm:"type:varchar(20);not null"`
	GroceryStoreLayout string    `gorm:"type:text"`
	AutoAddExpiring    bool      `gorm:"not null;default:false"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
