package model

import (
	"time"
)

// PantryItemModel is the GORM-specific struct for the 'pantry_items' table.
// The inventory is owned by other application features; this service only
// reads it for reconciliation snapshots.
type PantryItemModel struct {
	ID         string     `gorm:"type:uuid;primary_key"`
	OwnerID    string     `gorm:"type:varchar(64);not null;index"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Quantity   float64    `gorm:"not null;default:0"`
	Unit       string     `gorm:"type:varchar(50);not null"`
	Category   string     `gorm:"type:varchar(20);not null"`
	ExpiryDate *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PantryItemModel) TableName() string {
	return "pantry_items"
}
