package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"larder/internal/domain/repository"
)

type blobStore struct {
	db *sql.DB
}

// NewBlobStore creates a key/value blob store over the device-local
// database. Writes are full-row upserts; partial blob updates are never
// performed.
func NewBlobStore(db *sql.DB) repository.BlobStore {
	return &blobStore{db: db}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}

	return nil
}
