package memory

import (
	"context"
	"sort"
	"sync"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

type indexKey struct {
	runID string
	name  string
}

// IndexStore is an in-memory implementation of storage.IndexStore.
type IndexStore struct {
	mu   sync.RWMutex
	data map[indexKey]domain.MarketIndex
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{
		data: make(map[indexKey]domain.MarketIndex),
	}
}

// Compile-time interface check.
var _ storage.IndexStore = (*IndexStore)(nil)

// Insert adds one index value for a run. Returns ErrDuplicateKey if
// (run_id, name) exists.
func (s *IndexStore) Insert(_ context.Context, runID string, idx *domain.MarketIndex) error {
	if runID == "" || idx == nil || idx.Name == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := indexKey{runID, idx.Name}
	if _, exists := s.data[k]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[k] = *idx
	return nil
}

// ListByRun retrieves every index of a run, ordered by name ASC.
func (s *IndexStore) ListByRun(_ context.Context, runID string) ([]*domain.MarketIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.MarketIndex
	for k, idx := range s.data {
		if k.runID == runID {
			idxCopy := idx
			result = append(result, &idxCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}
