package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the wellnest service.
// Environment variables are parsed from the WELLNEST_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Mongo Configuration
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"wellnest"`

	// Token Configuration. The secret is held for the process lifetime and
	// never mutated after startup.
	JWTSecret     string `envconfig:"JWT_SECRET" default:""`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"72"`

	// Password hashing cost
	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`
}

// ResolveDefaults validates the parsed configuration.
func (c *Config) ResolveDefaults() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("WELLNEST_JWT_SECRET is required")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("token TTL must be positive, got %d", c.TokenTTLHours)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d outside [%d,%d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: WELLNEST_MONGO_URI, WELLNEST_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("WELLNEST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("mongo_database", cfg.MongoDatabase).
		Int("token_ttl_hours", cfg.TokenTTLHours).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:   EnvTesting,
		HTTPPort:      8080,
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "wellnest_test",
		JWTSecret:     "test-secret",
		TokenTTLHours: 72,
		BcryptCost:    bcrypt.MinCost,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
