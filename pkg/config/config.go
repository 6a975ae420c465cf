// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Source names where a run loads its raw table from.
type Source string

const (
	// SourceFile loads a CSV or Excel export from disk.
	SourceFile Source = "file"
	// SourceSnowflake loads the table straight from a Snowflake warehouse.
	SourceSnowflake Source = "snowflake"
)

// Config represents the application configuration
type Config struct {
	// Where the raw table comes from
	Source         Source
	InputPath      string // file source: path to the CSV/Excel export
	SnowflakeTable string // snowflake source: fully qualified table name

	// Where outputs go
	OutputDir string

	// Audit trail of cleaning operations in Postgres
	AuditEnabled bool

	// Database connections (loaded only when needed)
	Snowflake *SnowflakeConfig
	Postgres  *PostgresConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Source:         Source(getEnv("INGRESS_SOURCE", string(SourceFile))),
		InputPath:      getEnv("INGRESS_INPUT", ""),
		SnowflakeTable: getEnv("INGRESS_SNOWFLAKE_TABLE", ""),
		OutputDir:      getEnv("INGRESS_OUTPUT_DIR", "."),
		AuditEnabled:   getEnvAsBool("INGRESS_AUDIT_ENABLED", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	if cfg.Source == SourceSnowflake {
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	if cfg.AuditEnabled {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	switch c.Source {
	case SourceFile:
		// InputPath may also arrive as a CLI argument; checked at startup.
	case SourceSnowflake:
		if c.Snowflake == nil {
			return errors.New("snowflake configuration is required for the snowflake source")
		}
		if c.SnowflakeTable == "" {
			return errors.New("INGRESS_SNOWFLAKE_TABLE is required for the snowflake source")
		}
	default:
		return errors.New("INGRESS_SOURCE must be 'file' or 'snowflake'")
	}

	if c.AuditEnabled && c.Postgres == nil {
		return errors.New("postgreSQL configuration is required when auditing is enabled")
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
