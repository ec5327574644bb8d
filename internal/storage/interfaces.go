package storage

import (
	"context"

	"heronomics/internal/domain"
)

// InstrumentStore provides access to assembled instrument storage. Records
// are keyed by (run_id, symbol); a run is written once and never updated.
type InstrumentStore interface {
	// Insert adds one instrument for a run. Returns ErrDuplicateKey if
	// (run_id, symbol) exists.
	Insert(ctx context.Context, runID string, inst *domain.Instrument) error

	// GetBySymbol retrieves one instrument. Returns ErrNotFound if not exists.
	GetBySymbol(ctx context.Context, runID, symbol string) (*domain.Instrument, error)

	// ListByRun retrieves every instrument of a run, ordered by name ASC.
	ListByRun(ctx context.Context, runID string) ([]*domain.Instrument, error)
}

// IndexStore provides access to market index storage, keyed by
// (run_id, index name).
type IndexStore interface {
	// Insert adds one index value for a run. Returns ErrDuplicateKey if
	// (run_id, name) exists.
	Insert(ctx context.Context, runID string, idx *domain.MarketIndex) error

	// ListByRun retrieves every index of a run, ordered by name ASC.
	ListByRun(ctx context.Context, runID string) ([]*domain.MarketIndex, error)
}

// PriceHistoryStore provides access to synthesized price history storage,
// keyed by (run_id, symbol, date).
type PriceHistoryStore interface {
	// InsertBulk adds a full history for one instrument. Fails the entire
	// batch with ErrDuplicateKey on any duplicate (run_id, symbol, date).
	InsertBulk(ctx context.Context, runID, symbol string, points []domain.PricePoint) error

	// GetBySymbol retrieves the history of one instrument, ordered by
	// date ASC.
	GetBySymbol(ctx context.Context, runID, symbol string) ([]domain.PricePoint, error)
}
