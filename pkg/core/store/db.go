// Package store persists analysis reports in Postgres, or in JSON files when
// no database is configured.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"statement_deltas/pkg/core/analyzer"
)

// ErrNotFound is returned when no report matches a lookup.
var ErrNotFound = errors.New("report not found")

// ReportStore saves reports and loads them back by ticker and period end.
type ReportStore interface {
	Save(ctx context.Context, report *analyzer.Report) error
	Load(ctx context.Context, ticker, periodEnd string) (*analyzer.Report, error)
}

var (
	_ ReportStore = (*ReportRepo)(nil)
	_ ReportStore = (*FileStore)(nil)
)

// Connect opens a connection pool for dbURL and verifies it with a ping.
func Connect(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL not set")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return pool, nil
}
