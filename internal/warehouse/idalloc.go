//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fmcglabs/warehousegen/internal/logging"
	"github.com/fmcglabs/warehousegen/internal/store"
)

// idFormat describes the human-readable business identifier derived from a
// surrogate key.
type idFormat struct {
	prefix string
	width  int
}

var idFormats = map[string]idFormat{
	store.DimProducts:        {"P", 4},
	store.DimEmployees:       {"EMP", 6},
	store.DimRetailers:       {"R", 5},
	store.DimCampaigns:       {"MKT", 4},
	store.DimLocations:       {"LOC", 4},
	store.DimDepartments:     {"DEPT", 2},
	store.DimJobs:            {"JOB", 3},
	store.DimBanks:           {"BNK", 2},
	store.DimInsurance:       {"INS", 2},
	store.FactSales:          {"S", 10},
	store.FactEmployeeWages:  {"W", 10},
	store.FactInventory:      {"INV", 10},
	store.FactOperatingCosts: {"OPX", 10},
	store.FactMarketingCosts: {"MCX", 10},
}

// Allocator hands out surrogate keys per table. The first key for a table
// continues the persisted sequence (max+1); an unreadable sequence falls
// back to a timestamp-derived base salted with a per-run session value so
// concurrent runs do not collide. Keys never exceed the ceiling.
type Allocator struct {
	store   store.Store
	ceiling int64
	session int64

	mu   sync.Mutex
	seqs map[string]*sequence
}

type sequence struct {
	next      int64
	timestamp bool
}

// NewAllocator creates an allocator bound to the given store.
func NewAllocator(s store.Store, ceiling int64) *Allocator {
	id := uuid.New()
	session := int64(binary.BigEndian.Uint32(id[0:4])) % 100_000

	return &Allocator{
		store:   s,
		ceiling: ceiling,
		session: session,
		seqs:    make(map[string]*sequence),
	}
}

// NextKey returns the next surrogate key for the table.
func (a *Allocator) NextKey(ctx context.Context, table, keyColumn string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	seq, ok := a.seqs[table]
	if !ok {
		var err error
		seq, err = a.seed(ctx, table, keyColumn)
		if err != nil {
			return 0, err
		}
		a.seqs[table] = seq
	}

	key := seq.next
	if key > a.ceiling || key < 1 {
		// Wrap within the representable range rather than overflow. The
		// dedup append guards against the resulting collisions.
		key = (key-1)%a.ceiling + 1
		if key < 1 {
			key += a.ceiling
		}
		logging.Warn().
			Str("table", table).
			Int64("key", key).
			Msg("Key sequence wrapped at ceiling")
		seq.next = key
	}
	seq.next++
	return key, nil
}

func (a *Allocator) seed(ctx context.Context, table, keyColumn string) (*sequence, error) {
	v, err := a.store.Max(ctx, table, keyColumn)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return &sequence{next: 1}, nil
		}
		// Persisted maximum unreadable; derive a base from the clock and
		// session salt so keys stay unique across runs.
		base := time.Now().UnixMilli()*100_000 + a.session
		if base > a.ceiling || base < 1 {
			base = (base-1)%a.ceiling + 1
			if base < 1 {
				base += a.ceiling
			}
		}
		logging.Warn().
			Err(err).
			Str("table", table).
			Int64("base", base).
			Msg("Could not read key sequence; using timestamp base")
		return &sequence{next: base, timestamp: true}, nil
	}

	max, err := asInt64(v)
	if err != nil {
		return nil, fmt.Errorf("max(%s.%s): %w", table, keyColumn, err)
	}
	return &sequence{next: max + 1}, nil
}

// FormatID renders the business identifier for a key, e.g. EMP000042.
func FormatID(table string, key int64) string {
	f, ok := idFormats[table]
	if !ok {
		return fmt.Sprintf("%d", key)
	}
	return fmt.Sprintf("%s%0*d", f.prefix, f.width, key)
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected key type %T", v)
	}
}
