package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"statement_deltas/pkg/core/analyzer"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FileStore keeps one JSON file per ticker and period end under a directory.
// Used when no database is configured.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(ticker, periodEnd string) string {
	name := strings.ToUpper(ticker) + "_" + unsafeNameChars.ReplaceAllString(periodEnd, "-")
	return filepath.Join(s.dir, strings.Trim(name, "-")+".json")
}

// Save writes the report, replacing any earlier report for the same period.
func (s *FileStore) Save(ctx context.Context, report *analyzer.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	path := s.path(report.Meta.Ticker, report.Meta.PeriodEnd)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return os.Rename(tmp, path)
}

// Load reads the report stored for ticker and period end.
func (s *FileStore) Load(ctx context.Context, ticker, periodEnd string) (*analyzer.Report, error) {
	data, err := os.ReadFile(s.path(ticker, periodEnd))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report analyzer.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}
