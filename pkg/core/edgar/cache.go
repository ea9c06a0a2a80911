package edgar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilingCache provides file-based caching for raw filing documents
type FilingCache struct {
	cacheDir string
}

// NewFilingCache creates a cache rooted at dir. An empty dir defaults to
// .cache/edgar/filings in the current working directory.
func NewFilingCache(dir string) (*FilingCache, error) {
	if dir == "" {
		dir = filepath.Join(".cache", "edgar", "filings")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &FilingCache{cacheDir: dir}, nil
}

// cacheKey generates a unique key for a filing
func (c *FilingCache) cacheKey(cik, accession string) string {
	// Normalize accession number (remove dashes)
	accession = strings.ReplaceAll(accession, "-", "")
	return fmt.Sprintf("%s_%s", strings.TrimLeft(cik, "0"), accession)
}

func (c *FilingCache) filePath(cik, accession string) string {
	return filepath.Join(c.cacheDir, c.cacheKey(cik, accession)+".htm")
}

// Get retrieves a cached filing document
func (c *FilingCache) Get(cik, accession string) (string, bool) {
	data, err := os.ReadFile(c.filePath(cik, accession))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores a filing document in the cache
func (c *FilingCache) Set(cik, accession, html string) error {
	return os.WriteFile(c.filePath(cik, accession), []byte(html), 0644)
}

// Dir returns the cache directory path
func (c *FilingCache) Dir() string {
	return c.cacheDir
}

// Clear removes all cached files
func (c *FilingCache) Clear() error {
	if err := os.RemoveAll(c.cacheDir); err != nil {
		return err
	}
	return os.MkdirAll(c.cacheDir, 0755)
}
