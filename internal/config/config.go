// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr           string   `env:"APP_ADDR" envDefault:":8080"`
	CatalogPath    string   `env:"CATALOG_PATH" envDefault:"persons.yaml"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	BookshelfURL       string `env:"BOOKSHELF_URL" envDefault:"http://localhost:8081"`
	BookshelfUserAgent string `env:"BOOKSHELF_USER_AGENT" envDefault:"biodeck/1.0"`
	BookshelfRPS       int    `env:"BOOKSHELF_RPS" envDefault:"2"`
	BookshelfRetries   int    `env:"BOOKSHELF_RETRIES" envDefault:"2"`

	ReaderPageSize int   `env:"READER_PAGE_SIZE" envDefault:"2"`
	DesiredAge     int   `env:"DESIRED_AGE" envDefault:"30"`
	DeckSeed       int64 `env:"DECK_SEED" envDefault:"0"`
}

// Parse reads the configuration from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
