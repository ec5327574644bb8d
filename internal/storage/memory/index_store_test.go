package memory

import (
	"context"
	"errors"
	"testing"

	"heronomics/internal/domain"
	"heronomics/internal/storage"
)

func TestIndexStore_InsertAndList(t *testing.T) {
	store := NewIndexStore()
	ctx := context.Background()

	for _, idx := range []domain.MarketIndex{
		{Name: domain.IndexMartial, Value: 99.5, ChangePercent: -0.5},
		{Name: domain.IndexOverall, Value: 100.8, ChangePercent: 0.8},
		{Name: domain.IndexCaster, Value: 101.25, ChangePercent: 1.25},
	} {
		idx := idx
		if err := store.Insert(ctx, "run1", &idx); err != nil {
			t.Fatalf("Insert(%s) failed: %v", idx.Name, err)
		}
	}

	list, err := store.ListByRun(ctx, "run1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{domain.IndexCaster, domain.IndexOverall, domain.IndexMartial}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i].Name != want[i] {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Name, want[i])
		}
	}
}

func TestIndexStore_DuplicateKey(t *testing.T) {
	store := NewIndexStore()
	ctx := context.Background()

	idx := &domain.MarketIndex{Name: domain.IndexOverall, Value: 100.8, ChangePercent: 0.8}
	if err := store.Insert(ctx, "run1", idx); err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(ctx, "run1", idx); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestIndexStore_EmptyRun(t *testing.T) {
	store := NewIndexStore()

	list, err := store.ListByRun(context.Background(), "missing")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("list = %v, want empty", list)
	}
}
