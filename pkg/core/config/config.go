// Package config loads service configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file
// named by CONFIG_FILE, the process environment (after .env is loaded).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration
type Config struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	AllowedOrigins  []string      `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	DatabaseURL     string        `yaml:"database_url" envconfig:"DATABASE_URL"`
	CacheDir        string        `yaml:"cache_dir" envconfig:"CACHE_DIR"`
	ReportDir       string        `yaml:"report_dir" envconfig:"REPORT_DIR"`
	SECUserAgent    string        `yaml:"sec_user_agent" envconfig:"SEC_USER_AGENT"`
	HTTPTimeout     time.Duration `yaml:"http_timeout" envconfig:"HTTP_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:            8000,
		CacheDir:        ".cache/edgar/filings",
		ReportDir:       ".cache/reports",
		SECUserAgent:    "statement-deltas admin@example.com",
		HTTPTimeout:     60 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
}

// Load reads .env (if present), CONFIG_FILE (if set) and the environment.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()
	return LoadFrom(os.Getenv("CONFIG_FILE"))
}

// LoadFrom builds the configuration from an optional YAML file and the
// environment. An empty path skips the file.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.AllowedOrigins = cleanOrigins(cfg.AllowedOrigins)
	cfg.applyDefaults(Defaults())

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(d Config) {
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.CacheDir == "" {
		c.CacheDir = d.CacheDir
	}
	if c.ReportDir == "" {
		c.ReportDir = d.ReportDir
	}
	if c.SECUserAgent == "" {
		c.SECUserAgent = d.SECUserAgent
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
}

// cleanOrigins trims each origin and drops empty entries, so
// "http://a.com, http://b.com" yields two usable origins.
func cleanOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
