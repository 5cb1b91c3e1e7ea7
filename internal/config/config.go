package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Common errors
var (
	ErrURLRequired = errors.New("ES_URL is required")
	ErrURLInvalid  = errors.New("ES_URL is not a valid URL")
)

// Config holds the bridge configuration, built once at startup and
// treated as immutable for the process lifetime.
type Config struct {
	// URL is the base URL of the Elasticsearch cluster.
	URL string `env:"ES_URL,notEmpty"`
	// APIKey is the Elasticsearch API key. Loaded and validated but
	// not yet attached to outbound requests; see esclient.
	APIKey string `env:"ES_API_KEY"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configured URL is usable as an HTTP base URL.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrURLRequired
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrURLInvalid, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: missing scheme or host in %q", ErrURLInvalid, c.URL)
	}
	return nil
}
