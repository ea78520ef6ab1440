package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel string `env:"NESTEDSET_LOG_LEVEL" envDefault:"INFO"`
	// MaxRecords bounds the snapshot size accepted from a file
	MaxRecords int `env:"NESTEDSET_MAX_RECORDS" envDefault:"1048576"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
