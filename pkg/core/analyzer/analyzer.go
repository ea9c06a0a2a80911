package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"statement_deltas/pkg/core/delta"
	"statement_deltas/pkg/core/edgar"
)

// DefaultForm is used when a request does not name a form type.
const DefaultForm = "10-Q"

var statementKinds = []delta.StatementKind{delta.Income, delta.Balance, delta.CashFlow}

// Service runs analyses.
type Service struct {
	source FilingSource
	saver  Saver
	now    func() time.Time
}

// NewService creates a Service. saver may be nil to skip persistence.
func NewService(source FilingSource, saver Saver) *Service {
	return &Service{source: source, saver: saver, now: time.Now}
}

// Run fetches the latest filing of form for ticker and returns the report
// with all three statements annotated. A failure to persist the report is
// logged and does not fail the analysis.
func (s *Service) Run(ctx context.Context, ticker, form string) (*Report, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if form == "" {
		form = DefaultForm
	}

	filing, err := s.source.Fetch(ctx, ticker, form)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s for %s: %w", form, ticker, err)
	}

	report, err := s.Build(filing.HTML, ticker, form)
	if err != nil {
		return nil, err
	}
	report.Meta.FilingDate = filing.Meta.FilingDate
	if report.Meta.CompanyName == "" {
		report.Meta.CompanyName = filing.Meta.CompanyName
	}

	if s.saver != nil {
		if err := s.saver.Save(ctx, report); err != nil {
			log.Printf("[Analyzer] failed to save report for %s: %v", ticker, err)
		}
	}
	return report, nil
}

// Build analyzes an already downloaded filing document.
func (s *Service) Build(html, ticker, form string) (*Report, error) {
	statements, err := edgar.ExtractStatements(html)
	if err != nil {
		return nil, fmt.Errorf("failed to extract statements: %w", err)
	}

	annotated, summary, err := AnnotateStatements(statements)
	if err != nil {
		return nil, err
	}

	log.Printf("[Analyzer] %s %s: income=%d balance=%d cash_flow=%d badges",
		ticker, form,
		summary[delta.Income.String()].Total(),
		summary[delta.Balance.String()].Total(),
		summary[delta.CashFlow.String()].Total())

	return &Report{
		ID:          uuid.New().String(),
		Meta:        edgar.ExtractMeta(html, ticker, form),
		Tables:      annotated,
		Summary:     summary,
		LastUpdated: s.now(),
	}, nil
}

// AnnotateStatements badges each non-empty statement concurrently and
// returns the annotated tables with per-statement badge counts.
func AnnotateStatements(st edgar.Statements) (edgar.Statements, map[string]delta.Counts, error) {
	var (
		mu      sync.Mutex
		out     edgar.Statements
		summary = make(map[string]delta.Counts, len(statementKinds))
		g       errgroup.Group
	)

	for _, kind := range statementKinds {
		kind := kind
		tableHTML := st.Get(kind)
		if tableHTML == "" {
			continue
		}
		g.Go(func() error {
			annotated, counts, err := edgar.AnnotateHTMLSummary(tableHTML, kind)
			if err != nil {
				return fmt.Errorf("failed to annotate %s: %w", kind, err)
			}

			mu.Lock()
			defer mu.Unlock()
			out.Set(kind, annotated)
			summary[kind.String()] = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return edgar.Statements{}, nil, err
	}
	return out, summary, nil
}
