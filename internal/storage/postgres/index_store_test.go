package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

func TestIndexStore_InsertAndList(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIndexStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "run1", &domain.MarketIndex{Name: domain.IndexMartial, Value: 99.5, ChangePercent: -0.5}))
	require.NoError(t, store.Insert(ctx, "run1", &domain.MarketIndex{Name: domain.IndexOverall, Value: 100.8, ChangePercent: 0.8}))
	require.NoError(t, store.Insert(ctx, "run1", &domain.MarketIndex{Name: domain.IndexCaster, Value: 101.25, ChangePercent: 1.25}))

	list, err := store.ListByRun(ctx, "run1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, domain.IndexCaster, list[0].Name)
	require.Equal(t, domain.IndexOverall, list[1].Name)
	require.Equal(t, domain.IndexMartial, list[2].Name)
	require.Equal(t, 100.8, list[1].Value)
}

func TestIndexStore_DuplicateKey(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIndexStore(pool)
	ctx := context.Background()

	idx := &domain.MarketIndex{Name: domain.IndexOverall, Value: 100.8, ChangePercent: 0.8}
	require.NoError(t, store.Insert(ctx, "run1", idx))

	err := store.Insert(ctx, "run1", idx)
	require.True(t, errors.Is(err, storage.ErrDuplicateKey), "got %v", err)
}

func TestIndexStore_EmptyRun(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIndexStore(pool)

	list, err := store.ListByRun(context.Background(), "missing")
	require.NoError(t, err)
	require.Empty(t, list)
}
