package config

import (
	"os"
	"strconv"

	"godrsa/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Analysis AnalysisConfig
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case analyses are not persisted.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AnalysisConfig holds default approximation settings
type AnalysisConfig struct {
	Calculator  string
	Measure     string
	VCThreshold float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Analysis: AnalysisConfig{
			Calculator:  getEnvOrDefault("CALCULATOR", "classical"),
			Measure:     getEnvOrDefault("CONSISTENCY_MEASURE", "rough_membership"),
			VCThreshold: getEnvFloatOrDefault("VC_THRESHOLD", 1.0),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Analysis.Calculator {
	case "classical", "variable_consistency":
	default:
		return errors.ConfigInvalid("CALCULATOR must be classical or variable_consistency")
	}
	switch config.Analysis.Measure {
	case "rough_membership", "epsilon_consistency":
	default:
		return errors.ConfigInvalid("CONSISTENCY_MEASURE must be rough_membership or epsilon_consistency")
	}
	if config.Analysis.VCThreshold < 0 || config.Analysis.VCThreshold > 1 {
		return errors.ConfigInvalid("VC_THRESHOLD must be between 0 and 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
