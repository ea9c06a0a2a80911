package edgar

import (
	"path/filepath"
	"testing"
)

func TestFilingCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewFilingCache(filepath.Join(dir, "filings"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := cache.Get("0000320193", "0000320193-25-000073"); ok {
		t.Fatal("empty cache reported a hit")
	}
	if err := cache.Set("0000320193", "0000320193-25-000073", "<html/>"); err != nil {
		t.Fatal(err)
	}
	// padded and unpadded CIKs share an entry
	html, ok := cache.Get("320193", "000032019325000073")
	if !ok || html != "<html/>" {
		t.Errorf("Get() = %q, %v", html, ok)
	}

	if cache.Dir() != filepath.Join(dir, "filings") {
		t.Errorf("Dir() = %q", cache.Dir())
	}
	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get("320193", "0000320193-25-000073"); ok {
		t.Error("entry survived Clear()")
	}
}
