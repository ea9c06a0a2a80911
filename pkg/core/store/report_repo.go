package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"statement_deltas/pkg/core/analyzer"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reports (
	ticker      TEXT NOT NULL,
	period_end  TEXT NOT NULL,
	report_id   TEXT NOT NULL,
	report_json JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (ticker, period_end)
)`

// ReportRepo stores reports in Postgres, one row per ticker and period end.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepo creates a new repository instance.
func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// EnsureSchema creates the reports table if it does not exist.
func (r *ReportRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save upserts a report keyed on ticker and period end.
func (r *ReportRepo) Save(ctx context.Context, report *analyzer.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO reports (ticker, period_end, report_id, report_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ticker, period_end)
		DO UPDATE SET
			report_id = EXCLUDED.report_id,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		report.Meta.Ticker, report.Meta.PeriodEnd, report.ID, data, report.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves the report stored for ticker and period end.
func (r *ReportRepo) Load(ctx context.Context, ticker, periodEnd string) (*analyzer.Report, error) {
	query := `SELECT report_json FROM reports WHERE ticker = $1 AND period_end = $2`

	var data []byte
	err := r.pool.QueryRow(ctx, query, ticker, periodEnd).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report analyzer.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// Close releases the connection pool.
func (r *ReportRepo) Close() {
	r.pool.Close()
}
