package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"statement_deltas/pkg/core/analyzer"
	"statement_deltas/pkg/core/delta"
	"statement_deltas/pkg/core/edgar"
)

// Runs only against a live database: TEST_DATABASE_URL=postgres://... go test ./pkg/core/store
func TestReportRepo_SaveLoad(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := Connect(ctx, dbURL)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	repo := NewReportRepo(pool)
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	ticker := "TEST" + time.Now().Format("150405")
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM reports WHERE ticker = $1`, ticker)
	})

	report := &analyzer.Report{
		ID:          "first",
		Meta:        edgar.Meta{Ticker: ticker, PeriodEnd: "June 28, 2025"},
		Summary:     map[string]delta.Counts{"balance": {delta.Down: 1}},
		LastUpdated: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Save(ctx, report); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	report.ID = "second"
	if err := repo.Save(ctx, report); err != nil {
		t.Fatalf("Save() upsert error = %v", err)
	}

	got, err := repo.Load(ctx, ticker, "June 28, 2025")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != "second" || got.Summary["balance"][delta.Down] != 1 {
		t.Errorf("Load() = %+v", got)
	}

	if _, err := repo.Load(ctx, ticker, "March 29, 2025"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() missing error = %v, want ErrNotFound", err)
	}
}

func TestConnect_EmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), ""); err == nil {
		t.Error("Connect(\"\") succeeded")
	}
}
