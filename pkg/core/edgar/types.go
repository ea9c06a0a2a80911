// Package edgar fetches SEC EDGAR filings and extracts the financial
// statement tables they contain.
package edgar

import (
	"errors"
	"time"
)

var (
	// ErrTickerNotFound is returned when a ticker is not in SEC's company list.
	ErrTickerNotFound = errors.New("ticker not found in SEC database")
	// ErrNoFiling is returned when a company has no filing of the requested form.
	ErrNoFiling = errors.New("no matching filing")
)

// FilingMetadata contains metadata about a SEC filing
type FilingMetadata struct {
	CIK             string    `json:"cik"`
	CompanyName     string    `json:"company_name"`
	Tickers         []string  `json:"tickers"`
	AccessionNumber string    `json:"accession_number"`
	FilingDate      string    `json:"filing_date"`
	Form            string    `json:"form"`       // "10-Q", "10-K", "6-K"
	IsAmended       bool      `json:"is_amended"` // True for "10-Q/A" and friends
	PrimaryDocument string    `json:"primary_document"`
	FilingURL       string    `json:"filing_url"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// Filing is a filing's metadata together with its primary document.
type Filing struct {
	Meta FilingMetadata
	HTML string
}

// Meta is the report header derived from a filing document.
type Meta struct {
	CompanyName string `json:"company_name"`
	Ticker      string `json:"ticker"`
	ReportType  string `json:"report_type"`
	PeriodEnd   string `json:"period_end"`
	FilingDate  string `json:"filing_date"`
	Unit        string `json:"unit"`
}

// Statements holds the outer HTML of the first table found for each
// statement. Missing statements are empty strings.
type Statements struct {
	IncomeStatement string `json:"income_statement"`
	BalanceSheet    string `json:"balance_sheet"`
	CashFlow        string `json:"cash_flow"`
}

// submissionsResponse from SEC API
type submissionsResponse struct {
	CIK     string   `json:"cik"`
	Name    string   `json:"name"`
	Tickers []string `json:"tickers"`
	Filings struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

// recentFilings contains the parallel filing arrays of the submissions API
type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// tickerEntry is one record of company_tickers.json
type tickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}
