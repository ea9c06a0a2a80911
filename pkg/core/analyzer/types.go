// Package analyzer turns a ticker and form type into an annotated report:
// fetch the latest filing, pull out its three statements and badge them.
package analyzer

import (
	"context"
	"time"

	"statement_deltas/pkg/core/delta"
	"statement_deltas/pkg/core/edgar"
)

// Report is the analysis result returned to clients and persisted.
type Report struct {
	ID          string                  `json:"id"`
	Meta        edgar.Meta              `json:"meta"`
	Tables      edgar.Statements        `json:"tables"`
	Summary     map[string]delta.Counts `json:"summary"`
	LastUpdated time.Time               `json:"last_updated"`
}

// FilingSource provides filing documents.
type FilingSource interface {
	Fetch(ctx context.Context, ticker, form string) (*edgar.Filing, error)
}

// Saver persists reports.
type Saver interface {
	Save(ctx context.Context, r *Report) error
}
