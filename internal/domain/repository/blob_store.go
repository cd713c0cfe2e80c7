// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when no blob exists for the requested key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the device-durable key/value store backing the local list
// store. Keys are identity-scoped; values are opaque serialized collections.
type BlobStore interface {
	// Get retrieves the blob stored under key, or ErrBlobNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set durably stores data under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error
}
