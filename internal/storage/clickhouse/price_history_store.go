package clickhouse

import (
	"context"
	"fmt"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

const dateLayout = "2006-01-02"

// PriceHistoryStore implements storage.PriceHistoryStore using ClickHouse.
type PriceHistoryStore struct {
	conn *Conn
}

// NewPriceHistoryStore creates a new PriceHistoryStore.
func NewPriceHistoryStore(conn *Conn) *PriceHistoryStore {
	return &PriceHistoryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PriceHistoryStore = (*PriceHistoryStore)(nil)

// InsertBulk adds a full history for one instrument. Fails the entire batch
// with ErrDuplicateKey on any duplicate (run_id, symbol, date). MergeTree
// does not enforce uniqueness, so duplicates are checked explicitly before
// the batch is sent.
func (s *PriceHistoryStore) InsertBulk(ctx context.Context, runID, symbol string, points []domain.PricePoint) error {
	if runID == "" || symbol == "" {
		return storage.ErrInvalidInput
	}
	if len(points) == 0 {
		return nil
	}

	dates := make([]time.Time, len(points))
	seen := make(map[string]struct{}, len(points))
	for i, p := range points {
		d, err := time.Parse(dateLayout, p.Date)
		if err != nil {
			return fmt.Errorf("%w: bad date %q", storage.ErrInvalidInput, p.Date)
		}
		if _, dup := seen[p.Date]; dup {
			return storage.ErrDuplicateKey
		}
		seen[p.Date] = struct{}{}
		dates[i] = d
	}

	exists, err := s.exists(ctx, runID, symbol)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return storage.ErrDuplicateKey
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO price_history (run_id, symbol, date, price, volume)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for i, p := range points {
		if err := batch.Append(runID, symbol, dates[i], p.Price, p.Volume); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetBySymbol retrieves the history of one instrument, ordered by date ASC.
func (s *PriceHistoryStore) GetBySymbol(ctx context.Context, runID, symbol string) ([]domain.PricePoint, error) {
	query := `
		SELECT date, price, volume
		FROM price_history
		WHERE run_id = ? AND symbol = ?
		ORDER BY date ASC
	`

	rows, err := s.conn.Query(ctx, query, runID, symbol)
	if err != nil {
		return nil, fmt.Errorf("query by symbol: %w", err)
	}
	defer rows.Close()

	var result []domain.PricePoint
	for rows.Next() {
		var (
			date   time.Time
			price  float64
			volume int64
		)
		if err := rows.Scan(&date, &price, &volume); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		result = append(result, domain.PricePoint{
			Date:   date.Format(dateLayout),
			Price:  price,
			Volume: volume,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points: %w", err)
	}
	return result, nil
}

// exists reports whether any history rows are present for (run_id, symbol).
func (s *PriceHistoryStore) exists(ctx context.Context, runID, symbol string) (bool, error) {
	query := `
		SELECT count() FROM price_history
		WHERE run_id = ? AND symbol = ?
	`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, runID, symbol).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
