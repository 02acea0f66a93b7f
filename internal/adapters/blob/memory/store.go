// Package memory is an in-process blob store for tests and ephemeral runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
	"github.com/sparkvibe/sparkvibe-cli/internal/ports"
)

type Store struct {
	mu      sync.RWMutex
	records map[string]string
}

var _ ports.BlobStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{records: map[string]string{}}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return "", fmt.Errorf("blob %q: %w", key, domain.ErrRecordNotFound)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = value

	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)

	return nil
}

// Len reports the number of stored records. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
