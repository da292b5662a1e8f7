package warehouse

import (
	"context"
	"errors"
	"testing"

	"github.com/fmcglabs/warehousegen/internal/store"
)

func TestAllocatorSequentialKeys(t *testing.T) {
	ctx := context.Background()
	alloc := NewAllocator(store.NewMemStore(), 1<<62)

	for want := int64(1); want <= 5; want++ {
		key, err := alloc.NextKey(ctx, store.DimProducts, "product_key")
		if err != nil {
			t.Fatalf("NextKey failed: %v", err)
		}
		if key != want {
			t.Errorf("NextKey = %d, want %d", key, want)
		}
	}

	// An independent table starts its own sequence.
	key, err := alloc.NextKey(ctx, store.DimRetailers, "retailer_key")
	if err != nil || key != 1 {
		t.Errorf("NextKey for second table = %d, %v, want 1, nil", key, err)
	}
}

func TestAllocatorContinuesPersistedSequence(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemStore()
	schema, _ := store.SchemaFor(store.DimBanks)
	if err := m.Append(ctx, store.DimBanks, schema, [][]any{
		{int64(41), "BNK41", "Bank A"},
		{int64(7), "BNK07", "Bank B"},
	}); err != nil {
		t.Fatal(err)
	}

	alloc := NewAllocator(m, 1<<62)
	key, err := alloc.NextKey(ctx, store.DimBanks, "bank_key")
	if err != nil {
		t.Fatalf("NextKey failed: %v", err)
	}
	if key != 42 {
		t.Errorf("NextKey = %d, want 42", key)
	}
}

func TestAllocatorKeysUniqueAcrossRuns(t *testing.T) {
	// Two allocators against the same store, as in consecutive runs: the
	// second must not reissue keys the first already persisted.
	ctx := context.Background()
	m := store.NewMemStore()
	schema, _ := store.SchemaFor(store.DimBanks)

	seen := make(map[int64]bool)
	for run := 0; run < 3; run++ {
		alloc := NewAllocator(m, 1<<62)
		for i := 0; i < 10; i++ {
			key, err := alloc.NextKey(ctx, store.DimBanks, "bank_key")
			if err != nil {
				t.Fatalf("NextKey failed: %v", err)
			}
			if seen[key] {
				t.Fatalf("Key %d issued twice across runs", key)
			}
			seen[key] = true
			if err := m.Append(ctx, store.DimBanks, schema, [][]any{
				{key, FormatID(store.DimBanks, key), "Bank"},
			}); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestAllocatorTimestampFallback(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemStore()
	m.FailTable(store.FactSales, errors.New("connection reset"))

	alloc := NewAllocator(m, 1<<62)
	a, err := alloc.NextKey(ctx, store.FactSales, "sale_key")
	if err != nil {
		t.Fatalf("NextKey failed: %v", err)
	}
	b, err := alloc.NextKey(ctx, store.FactSales, "sale_key")
	if err != nil {
		t.Fatalf("NextKey failed: %v", err)
	}

	if a < 1 || b != a+1 {
		t.Errorf("Timestamp-mode keys = %d, %d; want positive and monotonic", a, b)
	}
	// The base must be well past any plausible sequential key.
	if a < 1_000_000 {
		t.Errorf("Timestamp-mode base %d suspiciously low", a)
	}
}

func TestAllocatorCeiling(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemStore()
	schema, _ := store.SchemaFor(store.DimBanks)
	if err := m.Append(ctx, store.DimBanks, schema, [][]any{
		{int64(99), "BNK99", "Bank"},
	}); err != nil {
		t.Fatal(err)
	}

	alloc := NewAllocator(m, 100)
	for i := 0; i < 5; i++ {
		key, err := alloc.NextKey(ctx, store.DimBanks, "bank_key")
		if err != nil {
			t.Fatalf("NextKey failed: %v", err)
		}
		if key < 1 || key > 100 {
			t.Errorf("Key %d outside [1, 100]", key)
		}
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		table string
		key   int64
		want  string
	}{
		{store.DimEmployees, 42, "EMP000042"},
		{store.DimProducts, 7, "P0007"},
		{store.DimRetailers, 123, "R00123"},
		{store.DimCampaigns, 5, "MKT0005"},
		{"unknown_table", 9, "9"},
	}
	for _, tc := range tests {
		if got := FormatID(tc.table, tc.key); got != tc.want {
			t.Errorf("FormatID(%s, %d) = %s, want %s", tc.table, tc.key, got, tc.want)
		}
	}
}
