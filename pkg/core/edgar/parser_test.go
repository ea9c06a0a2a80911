package edgar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const submissionsJSON = `{
  "cik": "320193",
  "name": "Apple Inc.",
  "tickers": ["AAPL"],
  "filings": {"recent": {
    "accessionNumber": ["0000320193-25-000073", "0000320193-25-000079", "0000320193-25-000057", "0000320193-24-000123"],
    "filingDate":      ["2025-08-01",           "2025-10-31",           "2025-05-02",           "2024-11-01"],
    "form":            ["10-Q",                 "10-K",                 "10-Q/A",               "10-K"],
    "primaryDocument": ["aapl-20250628.htm",    "aapl-20250927.htm",    "aapl-20250329.htm",    "aapl-20240928.htm"]
  }}
}`

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("request sent without User-Agent")
		}
		w.Write([]byte(`{"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}}`))
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(submissionsJSON))
	})
	mux.HandleFunc("/Archives/320193/000032019325000073/aapl-20250628.htm", func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Write([]byte("<html><body><table></table></body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server, opts ...Option) *Client {
	opts = append([]Option{
		WithHTTPClient(srv.Client()),
		WithEndpoints(
			srv.URL+"/files/company_tickers.json",
			srv.URL+"/submissions/CIK%s.json",
			srv.URL+"/Archives/%s/%s/%s",
		),
	}, opts...)
	return NewClient(opts...)
}

func TestClient_LookupCIK(t *testing.T) {
	c := newTestClient(newTestServer(t, nil))

	cik, err := c.LookupCIK(context.Background(), " aapl ")
	if err != nil {
		t.Fatalf("LookupCIK() error = %v", err)
	}
	if cik != "0000320193" {
		t.Errorf("LookupCIK() = %q, want 0000320193", cik)
	}

	if _, err := c.LookupCIK(context.Background(), "ZZZZ"); !errors.Is(err, ErrTickerNotFound) {
		t.Errorf("LookupCIK(ZZZZ) error = %v, want ErrTickerNotFound", err)
	}
}

func TestClient_LatestFiling(t *testing.T) {
	c := newTestClient(newTestServer(t, nil))

	meta, err := c.LatestFiling(context.Background(), "320193", "10-Q")
	if err != nil {
		t.Fatalf("LatestFiling() error = %v", err)
	}
	if meta.AccessionNumber != "0000320193-25-000073" {
		t.Errorf("AccessionNumber = %q, want the August 10-Q", meta.AccessionNumber)
	}
	if meta.IsAmended {
		t.Error("IsAmended = true for an original 10-Q")
	}
	if !strings.HasSuffix(meta.FilingURL, "/Archives/320193/000032019325000073/aapl-20250628.htm") {
		t.Errorf("FilingURL = %q", meta.FilingURL)
	}
	if meta.CompanyName != "Apple Inc." {
		t.Errorf("CompanyName = %q", meta.CompanyName)
	}

	if _, err := c.LatestFiling(context.Background(), "320193", "6-K"); !errors.Is(err, ErrNoFiling) {
		t.Errorf("LatestFiling(6-K) error = %v, want ErrNoFiling", err)
	}
}

func TestClient_FetchUsesCache(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	cache, err := NewFilingCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := newTestClient(srv, WithCache(cache))

	for i := 0; i < 2; i++ {
		filing, err := c.Fetch(context.Background(), "AAPL", "10-Q")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if !strings.Contains(filing.HTML, "<table>") {
			t.Errorf("unexpected filing body %q", filing.HTML)
		}
	}
	if hits != 1 {
		t.Errorf("filing document fetched %d times, want 1", hits)
	}
	if _, ok := cache.Get("0000320193", "0000320193-25-000073"); !ok {
		t.Error("filing not cached")
	}
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c := newTestClient(srv)

	if _, err := c.LookupCIK(context.Background(), "AAPL"); err == nil {
		t.Error("expected error for 404 ticker list")
	}
}

func TestPadCIK(t *testing.T) {
	tests := map[string]string{
		"320193":     "0000320193",
		"0000320193": "0000320193",
		" 1318605 ":  "0001318605",
	}
	for in, want := range tests {
		if got := padCIK(in); got != want {
			t.Errorf("padCIK(%q) = %q, want %q", in, got, want)
		}
	}
}
