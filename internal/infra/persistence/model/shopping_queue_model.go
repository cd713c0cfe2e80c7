package model

import (
	"time"
)

// ShoppingQueueModel is the GORM-specific struct for the 'shopping_queue'
// table. This service only performs additive inserts; checking off and
// clearing entries belongs to other application features.
type ShoppingQueueModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	OwnerID   string  `gorm:"type:varchar(64);not null;index"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Quantity  float64 `gorm:"not null;default:1"`
	Unit      string  `gorm:"type:varchar(50);not null"`
	Category  string  `gorm:"type:varchar(50);not null"`
	Checked   bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingQueueModel) TableName() string {
	return "shopping_queue"
}
