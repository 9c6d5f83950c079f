package config

import (
	"os"
	"strconv"

	"copulagof/domain/copula"
	"copulagof/domain/gof"
	"copulagof/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Scoring  ScoringConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// ScoringConfig holds the defaults for scoring runs; per-request
// overrides still pass through gof.NewParams validation.
type ScoringConfig struct {
	Alpha      float64
	Correction gof.Correction
	Families   []copula.Family
	Rotations  bool
}

// Load builds configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Scoring: ScoringConfig{
			Alpha:      gof.DefaultAlpha,
			Correction: gof.CorrectionNone,
		},
	}

	if alphaStr := os.Getenv("GOF_ALPHA"); alphaStr != "" {
		alpha, err := strconv.ParseFloat(alphaStr, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("GOF_ALPHA must be a number")
		}
		cfg.Scoring.Alpha = alpha
	}

	if corrStr := os.Getenv("GOF_CORRECTION"); corrStr != "" {
		correction, err := gof.ParseCorrection(corrStr)
		if err != nil {
			return nil, errors.Wrap(err, "GOF_CORRECTION invalid")
		}
		cfg.Scoring.Correction = correction
	}

	if famStr := os.Getenv("GOF_FAMILYSET"); famStr != "" {
		families, err := copula.Parse(famStr)
		if err != nil {
			return nil, errors.Wrap(err, "GOF_FAMILYSET invalid")
		}
		cfg.Scoring.Families = families
	}

	if rotStr := os.Getenv("GOF_ROTATIONS"); rotStr != "" {
		rotations, err := strconv.ParseBool(rotStr)
		if err != nil {
			return nil, errors.ConfigInvalid("GOF_ROTATIONS must be a boolean")
		}
		cfg.Scoring.Rotations = rotations
	}

	// Validate the scoring defaults through the same gate the core uses
	if _, err := cfg.Params(); err != nil {
		return nil, errors.Wrap(err, "scoring configuration invalid")
	}

	return cfg, nil
}

// Params converts the configured scoring defaults into validated run
// parameters.
func (c *Config) Params() (gof.Params, error) {
	return gof.NewParams(c.Scoring.Families, c.Scoring.Correction, c.Scoring.Alpha, c.Scoring.Rotations)
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
