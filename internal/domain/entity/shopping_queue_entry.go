package entity

import "time"

// ShoppingCategoryGeneral is the bucket assigned to every entry produced by
// this core. Category inference belongs to the shopping feature, not here.
const ShoppingCategoryGeneral = "general"

// ShoppingQueueEntry is one purchase request appended to the remote shopping
// queue. Entries are write-only from this core's point of view.
type ShoppingQueueEntry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Checked   bool      `json:"checked"` // Always initialized false.
	CreatedAt time.Time `json:"created_at"`
}
