// Package memory provides in-memory store implementations used by tests
// and the -use-memory run mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

type instrumentKey struct {
	runID  string
	symbol string
}

// InstrumentStore is an in-memory implementation of storage.InstrumentStore.
type InstrumentStore struct {
	mu   sync.RWMutex
	data map[instrumentKey]*domain.Instrument
}

// NewInstrumentStore creates a new in-memory instrument store.
func NewInstrumentStore() *InstrumentStore {
	return &InstrumentStore{
		data: make(map[instrumentKey]*domain.Instrument),
	}
}

// Compile-time interface check.
var _ storage.InstrumentStore = (*InstrumentStore)(nil)

// Insert adds one instrument for a run. Returns ErrDuplicateKey if
// (run_id, symbol) exists.
func (s *InstrumentStore) Insert(_ context.Context, runID string, inst *domain.Instrument) error {
	if runID == "" || inst == nil || inst.Symbol == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := instrumentKey{runID, inst.Symbol}
	if _, exists := s.data[k]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[k] = copyInstrument(inst)
	return nil
}

// GetBySymbol retrieves one instrument. Returns ErrNotFound if not exists.
func (s *InstrumentStore) GetBySymbol(_ context.Context, runID, symbol string) (*domain.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, exists := s.data[instrumentKey{runID, symbol}]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyInstrument(inst), nil
}

// ListByRun retrieves every instrument of a run, ordered by name ASC.
func (s *InstrumentStore) ListByRun(_ context.Context, runID string) ([]*domain.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Instrument
	for k, inst := range s.data {
		if k.runID == runID {
			result = append(result, copyInstrument(inst))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// copyInstrument stores a copy to prevent external mutation, including the
// history and news slices.
func copyInstrument(inst *domain.Instrument) *domain.Instrument {
	c := *inst
	if inst.PriceHistory != nil {
		c.PriceHistory = make([]domain.PricePoint, len(inst.PriceHistory))
		copy(c.PriceHistory, inst.PriceHistory)
	}
	if inst.News != nil {
		c.News = make([]string, len(inst.News))
		copy(c.News, inst.News)
	}
	return &c
}
