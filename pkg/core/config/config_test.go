package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Port != 8000 || cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := "port: 9000\nreport_dir: /var/reports\nallowed_origins:\n  - http://localhost:3000\n"
	if err := os.WriteFile(path, []byte(yamlDoc), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want env value 9100", cfg.Port)
	}
	if cfg.ReportDir != "/var/reports" {
		t.Errorf("ReportDir = %q, want file value", cfg.ReportDir)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv("PORT", "70000")
	if _, err := LoadFrom(""); err == nil {
		t.Error("expected validation error for out of range port")
	}

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFrom_AllowedOriginsTrimmed(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{"space after comma", "http://a.com, http://b.com", []string{"http://a.com", "http://b.com"}},
		{"padding and empty entries", " http://a.com ,, ", []string{"http://a.com"}},
		{"wildcard", "*", []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ALLOWED_ORIGINS", tt.env)

			cfg, err := LoadFrom("")
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if len(cfg.AllowedOrigins) != len(tt.want) {
				t.Fatalf("AllowedOrigins = %q, want %q", cfg.AllowedOrigins, tt.want)
			}
			for i := range tt.want {
				if cfg.AllowedOrigins[i] != tt.want[i] {
					t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], tt.want[i])
				}
			}
		})
	}
}
