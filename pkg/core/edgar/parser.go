package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	defaultUserAgent  = "statement-deltas admin@example.com"
	submissionsAPIURL = "https://data.sec.gov/submissions/CIK%s.json"
	archivesURL       = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"
	companyTickersURL = "https://www.sec.gov/files/company_tickers.json"
)

// Client talks to SEC EDGAR.
type Client struct {
	client    *http.Client
	userAgent string
	cache     *FilingCache

	tickersURL     string
	submissionsURL string // format string taking the padded CIK
	archivesURL    string // format string taking CIK, accession, document

	tickerCache map[string]string // Ticker -> CIK (padded)
	tickerMutex sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithUserAgent sets the User-Agent SEC requires on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithCache stores fetched filing documents in cache.
func WithCache(cache *FilingCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithEndpoints overrides the SEC endpoints. submissions and archives are
// format strings, see the package constants.
func WithEndpoints(tickers, submissions, archives string) Option {
	return func(c *Client) {
		c.tickersURL = tickers
		c.submissionsURL = submissions
		c.archivesURL = archives
	}
}

// NewClient creates a new EDGAR client
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:         &http.Client{Timeout: 60 * time.Second},
		userAgent:      defaultUserAgent,
		tickersURL:     companyTickersURL,
		submissionsURL: submissionsAPIURL,
		archivesURL:    archivesURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch resolves ticker, finds its latest filing of the given form and
// downloads the primary document.
func (c *Client) Fetch(ctx context.Context, ticker, form string) (*Filing, error) {
	cik, err := c.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, err
	}
	meta, err := c.LatestFiling(ctx, cik, form)
	if err != nil {
		return nil, err
	}
	html, err := c.FetchFilingHTML(ctx, meta)
	if err != nil {
		return nil, err
	}
	return &Filing{Meta: *meta, HTML: html}, nil
}

// LookupCIK resolves a ticker symbol to a CIK using SEC's company_tickers.json
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))

	c.tickerMutex.Lock()
	defer c.tickerMutex.Unlock()

	if c.tickerCache == nil {
		if err := c.loadTickerCache(ctx); err != nil {
			return "", err
		}
	}
	if cik, ok := c.tickerCache[normalized]; ok {
		return cik, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
}

// loadTickerCache fetches the full ticker list from SEC.
// Format: {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ...}
func (c *Client) loadTickerCache(ctx context.Context) error {
	body, err := c.fetchURL(ctx, c.tickersURL)
	if err != nil {
		return fmt.Errorf("failed to fetch company tickers: %w", err)
	}

	var resp map[string]tickerEntry
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse ticker JSON: %w", err)
	}

	cache := make(map[string]string, len(resp))
	for _, entry := range resp {
		cache[strings.ToUpper(entry.Ticker)] = fmt.Sprintf("%010d", entry.CIK)
	}
	c.tickerCache = cache

	log.Printf("[EDGAR] Loaded %d tickers from SEC", len(cache))
	return nil
}

// LatestFiling returns the most recently filed document of the given form.
// Amendments ("10-Q/A") count as the form they amend.
func (c *Client) LatestFiling(ctx context.Context, cik, form string) (*FilingMetadata, error) {
	cik = padCIK(cik)

	body, err := c.fetchURL(ctx, fmt.Sprintf(c.submissionsURL, cik))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	var resp submissionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse submissions JSON: %w", err)
	}

	recent := resp.Filings.Recent
	var best *FilingMetadata
	for i, f := range recent.Form {
		if !matchesForm(f, form) {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.FilingDate) || i >= len(recent.PrimaryDocument) {
			break
		}
		filingDate := recent.FilingDate[i]
		if best != nil && filingDate <= best.FilingDate {
			continue
		}

		accession := recent.AccessionNumber[i]
		primaryDoc := recent.PrimaryDocument[i]
		best = &FilingMetadata{
			CIK:             cik,
			CompanyName:     resp.Name,
			Tickers:         resp.Tickers,
			AccessionNumber: accession,
			FilingDate:      filingDate,
			Form:            f,
			IsAmended:       strings.HasSuffix(strings.ToUpper(f), "/A"),
			PrimaryDocument: primaryDoc,
			FilingURL:       c.filingURL(cik, accession, primaryDoc),
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %s for CIK %s", ErrNoFiling, form, cik)
	}
	return best, nil
}

// FetchFilingHTML downloads the primary document of a filing, consulting the
// cache first when one is configured.
func (c *Client) FetchFilingHTML(ctx context.Context, meta *FilingMetadata) (string, error) {
	if c.cache != nil {
		if html, ok := c.cache.Get(meta.CIK, meta.AccessionNumber); ok {
			return html, nil
		}
	}

	body, err := c.fetchURL(ctx, meta.FilingURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch filing HTML: %w", err)
	}
	meta.FetchedAt = time.Now()
	html := string(body)

	if c.cache != nil {
		if err := c.cache.Set(meta.CIK, meta.AccessionNumber, html); err != nil {
			log.Printf("[EDGAR] cache write failed for %s: %v", meta.AccessionNumber, err)
		}
	}
	return html, nil
}

func (c *Client) filingURL(cik, accession, doc string) string {
	return fmt.Sprintf(c.archivesURL, strings.TrimLeft(cik, "0"), strings.ReplaceAll(accession, "-", ""), doc)
}

func (c *Client) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

func matchesForm(candidate, form string) bool {
	candidate = strings.ToUpper(candidate)
	form = strings.ToUpper(form)
	return candidate == form || candidate == form+"/A"
}

func padCIK(cik string) string {
	// Remove leading zeros first, then pad to 10 digits
	cik = strings.TrimLeft(strings.TrimSpace(cik), "0")
	return fmt.Sprintf("%010s", cik)
}
