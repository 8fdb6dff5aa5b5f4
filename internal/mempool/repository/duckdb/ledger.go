// Package duckdb implements the audit ledger on an embedded DuckDB database.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// Ledger appends capture records. It holds a single connection, so callers
// must not use it while a LedgerTx is open.
type Ledger struct {
	db      *sql.DB
	metrics Metrics
}

// Open opens (or creates) the ledger at path and ensures the schema exists.
// An empty path opens an in-memory database.
func Open(ctx context.Context, path string, metrics Metrics) (l *Ledger, err error) {
	started := time.Now()
	defer func() {
		metrics.Observe("open", err, started)
	}()

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping ledger %q: %w", path, err)
	}

	for _, stmt := range schema {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply ledger schema: %w", err)
		}
	}

	return &Ledger{db: db, metrics: metrics}, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
