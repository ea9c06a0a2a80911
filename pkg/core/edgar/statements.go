package edgar

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"statement_deltas/pkg/core/delta"
)

// minTaggedFacts is the number of inline XBRL numeric facts a table needs
// before it is considered a statement. Tables of contents have none.
const minTaggedFacts = 4

var (
	balanceKeywords = []string{
		"total assets",
		"liabilities and equity",
		"liabilities and shareholders",
		"stockholders’ equity",
		"stockholders' equity",
		"shareholders’ equity",
		"shareholders' equity",
	}
	cashFlowKeywords = []string{
		"net cash provided",
		"operating activities",
		"investing activities",
		"financing activities",
	}
	incomeKeywords = []string{
		"net sales",
		"revenue",
		"gross margin",
		"operating income",
		"net income",
		"earnings per share",
	}
)

// ClassifyTable decides which statement a table holds. Balance sheet keywords
// are checked before cash flow keywords, and those before income keywords,
// since a cash flow statement usually mentions net income too.
func ClassifyTable(table *goquery.Selection) (delta.StatementKind, bool) {
	if table.Find(`ix\:nonfraction`).Length() < minTaggedFacts {
		return 0, false
	}

	text := strings.ToLower(strings.Join(strings.Fields(table.Text()), " "))
	switch {
	case containsAny(text, balanceKeywords):
		return delta.Balance, true
	case containsAny(text, cashFlowKeywords):
		return delta.CashFlow, true
	case containsAny(text, incomeKeywords):
		return delta.Income, true
	}
	return 0, false
}

// ExtractStatements returns the first income statement, balance sheet and
// cash flow table of a filing document.
func ExtractStatements(html string) (Statements, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Statements{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var st Statements
	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		kind, ok := ClassifyTable(table)
		if !ok {
			return true
		}
		slot := st.slot(kind)
		if *slot != "" {
			return true
		}
		tableHTML, err := goquery.OuterHtml(table)
		if err != nil {
			return true
		}
		*slot = tableHTML
		return st.IncomeStatement == "" || st.BalanceSheet == "" || st.CashFlow == ""
	})
	return st, nil
}

// Get returns the table HTML stored for kind.
func (s *Statements) Get(kind delta.StatementKind) string {
	return *s.slot(kind)
}

// Set stores table HTML for kind.
func (s *Statements) Set(kind delta.StatementKind, html string) {
	*s.slot(kind) = html
}

func (s *Statements) slot(kind delta.StatementKind) *string {
	switch kind {
	case delta.Balance:
		return &s.BalanceSheet
	case delta.CashFlow:
		return &s.CashFlow
	default:
		return &s.IncomeStatement
	}
}

// ExtractMeta reads the cover page facts of an inline XBRL document.
func ExtractMeta(html, ticker, form string) Meta {
	meta := Meta{Ticker: ticker, ReportType: form}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("[name]").Each(func(i int, sel *goquery.Selection) {
			name := strings.ToLower(sel.AttrOr("name", ""))
			switch {
			case strings.Contains(name, "entityregistrantname"):
				meta.CompanyName = strings.TrimSpace(sel.Text())
			case strings.Contains(name, "documentperiodenddate"):
				meta.PeriodEnd = strings.TrimSpace(sel.Text())
			}
		})
	}

	meta.Unit = detectUnit(html)
	return meta
}

// detectUnit looks for the scale caption printed above statement tables.
func detectUnit(html string) string {
	lower := strings.ToLower(html)
	switch {
	case strings.Contains(lower, "(in millions"):
		return "(in millions)"
	case strings.Contains(lower, "(in thousands"):
		return "(in thousands)"
	case strings.Contains(lower, "(in billions"):
		return "(in billions)"
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
