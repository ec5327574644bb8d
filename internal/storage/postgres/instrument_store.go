package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

// InstrumentStore implements storage.InstrumentStore using PostgreSQL.
// Scalar columns cover the fields queries filter and sort on; the full
// instrument rides along as a JSONB payload.
type InstrumentStore struct {
	pool *Pool
}

// NewInstrumentStore creates a new InstrumentStore.
func NewInstrumentStore(pool *Pool) *InstrumentStore {
	return &InstrumentStore{pool: pool}
}

// Compile-time interface check.
var _ storage.InstrumentStore = (*InstrumentStore)(nil)

// Insert adds one instrument for a run. Returns ErrDuplicateKey if
// (run_id, symbol) exists.
func (s *InstrumentStore) Insert(ctx context.Context, runID string, inst *domain.Instrument) error {
	if runID == "" || inst == nil || inst.Symbol == "" {
		return storage.ErrInvalidInput
	}

	payload, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("marshal instrument: %w", err)
	}

	query := `
		INSERT INTO instruments (
			run_id, symbol, name, beta, base_price, current_price,
			daily_change_percent, market_cap, pe_ratio, dividend_yield,
			market_sentiment, analyst_rating, payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = s.pool.Exec(ctx, query,
		runID,
		inst.Symbol,
		inst.Name,
		inst.Beta,
		inst.BasePrice,
		inst.CurrentPrice,
		inst.DailyChangePercent,
		inst.MarketCap,
		inst.PERatio,
		inst.DividendYield,
		inst.Sentiment,
		inst.Rating,
		payload,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert instrument: %w", err)
	}
	return nil
}

// GetBySymbol retrieves one instrument. Returns ErrNotFound if not exists.
func (s *InstrumentStore) GetBySymbol(ctx context.Context, runID, symbol string) (*domain.Instrument, error) {
	query := `
		SELECT payload
		FROM instruments
		WHERE run_id = $1 AND symbol = $2
	`

	var payload []byte
	if err := s.pool.QueryRow(ctx, query, runID, symbol).Scan(&payload); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get instrument by symbol: %w", err)
	}

	var inst domain.Instrument
	if err := json.Unmarshal(payload, &inst); err != nil {
		return nil, fmt.Errorf("unmarshal instrument: %w", err)
	}
	return &inst, nil
}

// ListByRun retrieves every instrument of a run, ordered by name ASC.
func (s *InstrumentStore) ListByRun(ctx context.Context, runID string) ([]*domain.Instrument, error) {
	query := `
		SELECT payload
		FROM instruments
		WHERE run_id = $1
		ORDER BY name ASC
	`

	rows, err := s.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list instruments by run: %w", err)
	}
	defer rows.Close()

	var result []*domain.Instrument
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan instrument: %w", err)
		}
		var inst domain.Instrument
		if err := json.Unmarshal(payload, &inst); err != nil {
			return nil, fmt.Errorf("unmarshal instrument: %w", err)
		}
		result = append(result, &inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instruments: %w", err)
	}
	return result, nil
}
