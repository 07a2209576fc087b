package config

import (
	"fmt"
	"os"
)

// Config holds the two required store secrets and the listen address.
type Config struct {
	StoreURL string
	StoreKey string
	HTTPAddr string
}

// Load reads the configuration from the environment. A missing store secret
// is a fatal startup condition, not something to degrade around.
func Load() (Config, error) {
	cfg := Config{
		StoreURL: os.Getenv("STORE_URL"),
		StoreKey: os.Getenv("STORE_KEY"),
		HTTPAddr: os.Getenv("HTTP_ADDR"),
	}

	if cfg.StoreURL == "" {
		return Config{}, fmt.Errorf("STORE_URL is not set")
	}
	if cfg.StoreKey == "" {
		return Config{}, fmt.Errorf("STORE_KEY is not set")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	return cfg, nil
}

// DSN composes the Postgres connection string from the store endpoint and
// access key. STORE_URL carries the keyword/value part without credentials,
// e.g. "host=db.example.com port=5432 user=postgres dbname=inventory".
func (c Config) DSN() string {
	return fmt.Sprintf("%s password=%s", c.StoreURL, c.StoreKey)
}
