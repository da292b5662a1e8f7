//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests and dry runs. Errors can be
// injected per table to exercise failure paths.
type MemStore struct {
	mu      sync.Mutex
	tables  map[string][]Column
	rows    map[string][][]any
	failing map[string]error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		tables:  make(map[string][]Column),
		rows:    make(map[string][][]any),
		failing: make(map[string]error),
	}
}

// FailTable makes every subsequent operation on the table return err.
// Passing nil clears the injection.
func (m *MemStore) FailTable(table string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failing, table)
		return
	}
	m.failing[table] = err
}

// Rows returns a copy of the stored rows for a table.
func (m *MemStore) Rows(table string) [][]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]any, len(m.rows[table]))
	copy(out, m.rows[table])
	return out
}

// RowCount returns how many rows a table holds.
func (m *MemStore) RowCount(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows[table])
}

// Created reports whether CreateIfAbsent was called for the table.
func (m *MemStore) Created(table string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tables[table]
	return ok
}

// CreateIfAbsent is not subject to FailTable injection: it only records
// metadata, and failure tests target the data path.
func (m *MemStore) CreateIfAbsent(_ context.Context, table string, schema Schema) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[table]; !ok {
		m.tables[table] = schema
	}
	return nil
}

func (m *MemStore) Append(_ context.Context, table string, schema Schema, rows [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) != len(schema) {
			return fmt.Errorf("row width %d does not match schema width %d for %s",
				len(row), len(schema), table)
		}
	}
	if _, ok := m.tables[table]; !ok {
		m.tables[table] = schema
	}
	m.rows[table] = append(m.rows[table], rows...)
	return nil
}

func (m *MemStore) AppendDedup(_ context.Context, table string, schema Schema, keyColumn string, rows [][]any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return 0, err
	}

	idx := schema.Index(keyColumn)
	if idx < 0 {
		return 0, fmt.Errorf("key column %s not in schema for %s", keyColumn, table)
	}

	existing := make(map[int64]struct{})
	for _, row := range m.rows[table] {
		if key, ok := row[idx].(int64); ok {
			existing[key] = struct{}{}
		}
	}

	appended := 0
	for _, row := range rows {
		key, ok := row[idx].(int64)
		if !ok {
			return appended, fmt.Errorf("key column %s in %s is not an int64", keyColumn, table)
		}
		if _, dup := existing[key]; dup {
			continue
		}
		existing[key] = struct{}{}
		if _, ok := m.tables[table]; !ok {
			m.tables[table] = schema
		}
		m.rows[table] = append(m.rows[table], row)
		appended++
	}
	return appended, nil
}

func (m *MemStore) Select(_ context.Context, table string, columns []string) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return nil, err
	}

	schema, ok := m.tables[table]
	if !ok {
		return nil, ErrNoRows
	}
	indexes := make([]int, len(columns))
	for i, c := range columns {
		idx := Schema(schema).Index(c)
		if idx < 0 {
			return nil, fmt.Errorf("column %s not in %s", c, table)
		}
		indexes[i] = idx
	}

	out := make([][]any, len(m.rows[table]))
	for i, row := range m.rows[table] {
		projected := make([]any, len(indexes))
		for j, idx := range indexes {
			projected[j] = row[idx]
		}
		out[i] = projected
	}
	return out, nil
}

func (m *MemStore) Max(_ context.Context, table, column string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return nil, err
	}

	schema, ok := m.tables[table]
	if !ok {
		return nil, ErrNoRows
	}
	idx := Schema(schema).Index(column)
	if idx < 0 {
		return nil, fmt.Errorf("column %s not in %s", column, table)
	}

	var max any
	for _, row := range m.rows[table] {
		v := row[idx]
		if v == nil {
			continue
		}
		if max == nil || less(max, v) {
			max = v
		}
	}
	if max == nil {
		return nil, ErrNoRows
	}
	return max, nil
}

func (m *MemStore) HasRows(_ context.Context, table string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return false, err
	}
	return len(m.rows[table]) > 0, nil
}

func less(a, b any) bool {
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		return ok && av < bv
	case int:
		bv, ok := b.(int)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	}
	return false
}
