package memory

import (
	"context"
	"sort"
	"sync"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

type historyKey struct {
	runID  string
	symbol string
	date   string
}

// PriceHistoryStore is an in-memory implementation of
// storage.PriceHistoryStore.
type PriceHistoryStore struct {
	mu   sync.RWMutex
	data map[historyKey]domain.PricePoint
}

// NewPriceHistoryStore creates a new in-memory price history store.
func NewPriceHistoryStore() *PriceHistoryStore {
	return &PriceHistoryStore{
		data: make(map[historyKey]domain.PricePoint),
	}
}

// Compile-time interface check.
var _ storage.PriceHistoryStore = (*PriceHistoryStore)(nil)

// InsertBulk adds a full history for one instrument. Fails the entire batch
// with ErrDuplicateKey on any duplicate (run_id, symbol, date).
func (s *PriceHistoryStore) InsertBulk(_ context.Context, runID, symbol string, points []domain.PricePoint) error {
	if runID == "" || symbol == "" {
		return storage.ErrInvalidInput
	}
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check intra-batch and store duplicates before writing anything.
	seen := make(map[historyKey]struct{}, len(points))
	for _, p := range points {
		k := historyKey{runID, symbol, p.Date}
		if _, dup := seen[k]; dup {
			return storage.ErrDuplicateKey
		}
		if _, dup := s.data[k]; dup {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	for _, p := range points {
		s.data[historyKey{runID, symbol, p.Date}] = p
	}
	return nil
}

// GetBySymbol retrieves the history of one instrument, ordered by date ASC.
func (s *PriceHistoryStore) GetBySymbol(_ context.Context, runID, symbol string) ([]domain.PricePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.PricePoint
	for k, p := range s.data {
		if k.runID == runID && k.symbol == symbol {
			result = append(result, p)
		}
	}

	// ISO dates sort lexically.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result, nil
}
