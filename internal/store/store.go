//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package store provides the destination-store collaborator: table
// creation, batched appends, duplicate-safe appends, and max-value
// lookups. The generation core depends only on the Store interface.
package store

import (
	"context"
	"errors"
)

// ErrNoRows is returned by Max when the table is missing or empty, or the
// column holds only NULLs.
var ErrNoRows = errors.New("store: no rows")

// Column types understood by the schema registry.
const (
	TypeBigint = "BIGINT"
	TypeInt    = "INTEGER"
	TypeFloat  = "DOUBLE PRECISION"
	TypeText   = "TEXT"
	TypeDate   = "DATE"
)

// Column describes a single destination column.
type Column struct {
	Name     string
	Type     string
	Required bool
}

// Schema is an ordered column list for one destination table.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Store is the persistence collaborator. Appends have at-least-once
// semantics from the caller's perspective; AppendDedup makes repeated
// appends of the same keys safe.
type Store interface {
	// CreateIfAbsent ensures the table exists with the given schema.
	CreateIfAbsent(ctx context.Context, table string, schema Schema) error

	// Append inserts rows (ordered per schema) into the table.
	Append(ctx context.Context, table string, schema Schema, rows [][]any) error

	// AppendDedup inserts rows whose key column value is not already
	// persisted, returning how many rows were actually appended.
	AppendDedup(ctx context.Context, table string, schema Schema, keyColumn string, rows [][]any) (int, error)

	// Select returns the given columns for every row of the table, or
	// ErrNoRows when the table does not exist.
	Select(ctx context.Context, table string, columns []string) ([][]any, error)

	// Max returns the maximum value of a column, or ErrNoRows.
	Max(ctx context.Context, table, column string) (any, error)

	// HasRows reports whether the table exists and holds any rows.
	HasRows(ctx context.Context, table string) (bool, error)
}
