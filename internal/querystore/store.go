// Package querystore persists the screen's search query under a fixed key.
package querystore

import (
	"context"
	"fmt"

	"github.com/matheus3301/posts/internal/store"
)

// Store reads and writes the query value in the profile database.
type Store struct {
	db  *store.DB
	key string
}

// New creates a store bound to key.
func New(db *store.DB, key string) *Store {
	return &Store{db: db, key: key}
}

// Key returns the storage key the query lives under.
func (s *Store) Key() string { return s.key }

// Save writes value under the store key.
func (s *Store) Save(ctx context.Context, value string) error {
	if err := s.db.PutValue(ctx, s.key, value); err != nil {
		return fmt.Errorf("save query: %w", err)
	}
	return nil
}

// Load returns the saved query. ok is false if nothing was ever saved.
func (s *Store) Load(ctx context.Context) (value string, ok bool, err error) {
	value, ok, err = s.db.GetValue(ctx, s.key)
	if err != nil {
		return "", false, fmt.Errorf("load query: %w", err)
	}
	return value, ok, nil
}

// Clear removes the saved query.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.db.DeleteValue(ctx, s.key); err != nil {
		return fmt.Errorf("clear query: %w", err)
	}
	return nil
}
