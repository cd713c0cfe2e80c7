// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// CustomList is a user-named, ordered collection of pantry item references.
// Lists live only on the device; the remote store never sees them.
type CustomList struct {
	ID        string    `json:"id"`         // Time-ordered unique identifier, generated at creation.
	Name      string    `json:"name"`       // User-editable display name.
	Items     []string  `json:"items"`      // Ordered item references, duplicates forbidden.
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation.
	UpdatedAt time.Time `json:"updated_at"` // Refreshed on every mutation.
}

// HasItem reports whether the list already references the given item.
func (l *CustomList) HasItem(itemID string) bool {
	return slices.Contains(l.Items, itemID)
}

// Clone returns a deep copy of the list so callers can hand it out without
// exposing the store's in-memory state to mutation.
func (l *CustomList) Clone() *CustomList {
	if l == nil {
		return nil
	}

	clone := *l
	clone.Items = slices.Clone(l.Items)

	return &clone
}
