package entity

import "time"

// StorageCategory identifies where a pantry item is kept.
type StorageCategory string

const (
	StorageCategoryFridge  StorageCategory = "fridge"
	StorageCategoryFreezer StorageCategory = "freezer"
	StorageCategoryPantry  StorageCategory = "pantry"
)

// PantryItem represents one inventory entry owned by the remote store.
// This core only ever reads pantry items; it never writes them.
type PantryItem struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	Name       string          `json:"name"`
	Quantity   float64         `json:"quantity"` // Zero means out of stock.
	Unit       string          `json:"unit"`
	Category   StorageCategory `json:"category"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InStock reports whether the item has any remaining quantity.
func (p *PantryItem) InStock() bool {
	return p.Quantity > 0
}
