package postgres

import (
	"context"
	"fmt"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

// IndexStore implements storage.IndexStore using PostgreSQL.
type IndexStore struct {
	pool *Pool
}

// NewIndexStore creates a new IndexStore.
func NewIndexStore(pool *Pool) *IndexStore {
	return &IndexStore{pool: pool}
}

// Compile-time interface check.
var _ storage.IndexStore = (*IndexStore)(nil)

// Insert adds one index value for a run. Returns ErrDuplicateKey if
// (run_id, name) exists.
func (s *IndexStore) Insert(ctx context.Context, runID string, idx *domain.MarketIndex) error {
	if runID == "" || idx == nil || idx.Name == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO market_indices (run_id, name, value, change_percent)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.pool.Exec(ctx, query, runID, idx.Name, idx.Value, idx.ChangePercent)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert index: %w", err)
	}
	return nil
}

// ListByRun retrieves every index of a run, ordered by name ASC.
func (s *IndexStore) ListByRun(ctx context.Context, runID string) ([]*domain.MarketIndex, error) {
	query := `
		SELECT name, value, change_percent
		FROM market_indices
		WHERE run_id = $1
		ORDER BY name ASC
	`

	rows, err := s.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("list indices by run: %w", err)
	}
	defer rows.Close()

	var result []*domain.MarketIndex
	for rows.Next() {
		var idx domain.MarketIndex
		if err := rows.Scan(&idx.Name, &idx.Value, &idx.ChangePercent); err != nil {
			return nil, fmt.Errorf("scan index: %w", err)
		}
		result = append(result, &idx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate indices: %w", err)
	}
	return result, nil
}
