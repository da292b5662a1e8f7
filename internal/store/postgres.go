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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fmcglabs/warehousegen/internal/logging"
)

// undefinedTable is the SQLSTATE for a missing relation.
const undefinedTable = "42P01"

// Postgres implements Store on top of a pgx connection pool. All tables
// live in a single schema (the "dataset").
type Postgres struct {
	pool    *pgxpool.Pool
	dataset string
}

// Connect establishes a connection pool to the destination database and
// ensures the dataset schema exists.
func Connect(ctx context.Context, connString, dataset string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Uint16("port", config.ConnConfig.Port).
		Str("database", config.ConnConfig.Database).
		Str("dataset", dataset).
		Msg("Connecting to destination store")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pg := &Postgres{pool: pool, dataset: dataset}
	if _, err := pool.Exec(ctx,
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", quoteIdent(dataset))); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create dataset %s: %w", dataset, err)
	}

	logging.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Str("dataset", dataset).
		Msg("Connected to destination store")

	return pg, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// CreateIfAbsent ensures the table exists with the given schema.
func (p *Postgres) CreateIfAbsent(ctx context.Context, table string, schema Schema) error {
	cols := make([]string, len(schema))
	for i, c := range schema {
		null := ""
		if c.Required {
			null = " NOT NULL"
		}
		cols[i] = fmt.Sprintf("%s %s%s", quoteIdent(c.Name), c.Type, null)
	}
	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n)",
		p.qualified(table), strings.Join(cols, ",\n    "))

	if _, err := p.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// Append bulk-inserts rows using the binary copy protocol. The connection
// is scoped to this call and returned to the pool on all exit paths.
func (p *Postgres) Append(ctx context.Context, table string, schema Schema, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	copied, err := p.pool.CopyFrom(ctx,
		pgx.Identifier{p.dataset, table},
		schema.Names(),
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to append %d rows to %s: %w", len(rows), table, err)
	}

	logging.Info().
		Str("table", table).
		Int64("rows", copied).
		Msg("Appended rows")
	return nil
}

// AppendDedup filters out rows whose key column value is already persisted
// before appending, making re-delivery of the same batch safe. The key
// column must be a BIGINT surrogate key.
func (p *Postgres) AppendDedup(ctx context.Context, table string, schema Schema, keyColumn string, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	idx := schema.Index(keyColumn)
	if idx < 0 {
		return 0, fmt.Errorf("key column %s not in schema for %s", keyColumn, table)
	}

	candidates := make([]int64, 0, len(rows))
	for _, row := range rows {
		key, ok := row[idx].(int64)
		if !ok {
			return 0, fmt.Errorf("key column %s in %s is not an int64", keyColumn, table)
		}
		candidates = append(candidates, key)
	}

	existing, err := p.existingKeys(ctx, table, keyColumn, candidates)
	if err != nil {
		// Missing table means first load; anything else is logged and the
		// append proceeds (better to try than fail).
		if !isUndefinedTable(err) {
			logging.Warn().
				Err(err).
				Str("table", table).
				Msg("Could not check for duplicates; proceeding with append")
		}
		existing = nil
	}

	filtered := rows
	if len(existing) > 0 {
		filtered = make([][]any, 0, len(rows))
		for i, row := range rows {
			if _, dup := existing[candidates[i]]; !dup {
				filtered = append(filtered, row)
			}
		}
		logging.Warn().
			Str("table", table).
			Int("duplicates", len(rows)-len(filtered)).
			Msg("Filtered duplicate keys before append")
	}

	if len(filtered) == 0 {
		return 0, nil
	}
	if err := p.Append(ctx, table, schema, filtered); err != nil {
		return 0, err
	}
	return len(filtered), nil
}

func (p *Postgres) existingKeys(ctx context.Context, table, keyColumn string, candidates []int64) (map[int64]struct{}, error) {
	sql := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s = ANY($1)",
		quoteIdent(keyColumn), p.qualified(table), quoteIdent(keyColumn))

	rows, err := p.pool.Query(ctx, sql, candidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[int64]struct{})
	for rows.Next() {
		var key int64
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		existing[key] = struct{}{}
	}
	return existing, rows.Err()
}

// Select returns the given columns for every row of the table.
func (p *Postgres) Select(ctx context.Context, table string, columns []string) ([][]any, error) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), p.qualified(table))

	rows, err := p.pool.Query(ctx, sql)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", table, err)
	}
	return out, nil
}

// Max returns the maximum value of a column, or ErrNoRows when the table
// is missing, empty, or the column is all NULL.
func (p *Postgres) Max(ctx context.Context, table, column string) (any, error) {
	sql := fmt.Sprintf("SELECT MAX(%s) FROM %s", quoteIdent(column), p.qualified(table))

	var value any
	if err := p.pool.QueryRow(ctx, sql).Scan(&value); err != nil {
		if isUndefinedTable(err) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to read max(%s) from %s: %w", column, table, err)
	}
	if value == nil {
		return nil, ErrNoRows
	}
	return value, nil
}

// HasRows reports whether the table exists and holds at least one row.
func (p *Postgres) HasRows(ctx context.Context, table string) (bool, error) {
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", p.qualified(table))

	var exists bool
	if err := p.pool.QueryRow(ctx, sql).Scan(&exists); err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check rows in %s: %w", table, err)
	}
	return exists, nil
}

func (p *Postgres) qualified(table string) string {
	return quoteIdent(p.dataset) + "." + quoteIdent(table)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
