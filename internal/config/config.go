package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	CatalogAddress         string
	CatalogRefreshInterval time.Duration
	ShutdownTimeout        time.Duration
}

const (
	defaultRunAddress             = ":8080"
	defaultCatalogRefreshInterval = 5 * time.Minute
	defaultShutdownTimeout        = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		CatalogAddress:         getString(lookup, "CATALOG_ADDRESS", ""),
		CatalogRefreshInterval: getDuration(lookup, "CATALOG_REFRESH_INTERVAL", defaultCatalogRefreshInterval),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		refreshIntervalStr = cfg.CatalogRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogAddress, "c", cfg.CatalogAddress, "Catalog store base URL")
	fs.StringVar(&refreshIntervalStr, "catalog-refresh", refreshIntervalStr, "Interval between catalog refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CatalogRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid catalog refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CatalogRefreshInterval <= 0 {
		cfg.CatalogRefreshInterval = defaultCatalogRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CatalogAddress == "" {
		return nil, fmt.Errorf("catalog address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
