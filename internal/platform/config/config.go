// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Session strategy selectors. See [Config.SessionStrategy].
const (
	// SessionStrategyServer stores opaque random tokens server-side (Redis),
	// revocable by deletion.
	SessionStrategyServer = "server"

	// SessionStrategySigned issues self-contained signed tokens; stateless,
	// revocable only by rotating the session secret.
	SessionStrategySigned = "signed"
)

// # Configuration Schema

// Config holds all runtime configuration for the Atlastrip API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis): server-side sessions and the enrichment cache.
	RedisURL string `env:"REDIS_URL,required"`

	// SessionStrategy selects how session tokens are issued and validated:
	// "server" (opaque token persisted in Redis) or "signed" (HS256 JWT).
	SessionStrategy string `env:"SESSION_STRATEGY" envDefault:"server"`

	// SessionSecret signs session tokens for the "signed" strategy. Required
	// only when that strategy is active.
	SessionSecret string `env:"SESSION_SECRET"`

	// External enrichment providers
	PexelsAPIKey    string `env:"PEXELS_API_KEY"`
	PexelsBaseURL   string `env:"PEXELS_BASE_URL"   envDefault:"https://api.pexels.com"`
	GeocodeBaseURL  string `env:"GEOCODE_BASE_URL"  envDefault:"https://geocoding-api.open-meteo.com"`
	ForecastBaseURL string `env:"FORECAST_BASE_URL" envDefault:"https://api.open-meteo.com"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field validation that struct tags cannot express.
	switch cfg.SessionStrategy {
	case SessionStrategyServer:
	case SessionStrategySigned:
		if cfg.SessionSecret == "" {
			return nil, fmt.Errorf("config: SESSION_SECRET is required when SESSION_STRATEGY=%s", SessionStrategySigned)
		}
	default:
		return nil, fmt.Errorf("config: unknown SESSION_STRATEGY %q", cfg.SessionStrategy)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the additional origins permitted by CORS,
// parsed from the comma-separated EXTRA_ORIGINS variable.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	parts := strings.Split(c.ExtraOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
