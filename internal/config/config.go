package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string // empty logs to stdout only
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Embedded database file
	DBPath         string `validate:"required"`
	DBMaxOpenConns int    `validate:"min=1"`

	// Remote recipe catalog
	SpoonacularBaseURL string        `validate:"required,url"`
	SpoonacularAPIKey  string        `validate:"required"`
	HTTPClientTimeout  time.Duration `validate:"gt=0"`

	ShutdownTimeout time.Duration `validate:"gt=0"`

	// Local API access. An empty APIKey leaves /api/v1 open.
	APIKey         string `validate:"omitempty,min=16"`
	TrustedProxies []string

	// Local identity provider
	IdentitySigningKey string `validate:"required,min=16"`
	IdentityIssuer     string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:          getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:             getEnv(EnvLogDir, ""),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:        getEnv(EnvServiceName, DefaultServiceName),
		Version:            getEnv(EnvVersion, DefaultVersion),
		DBPath:             getEnv(EnvDBPath, DefaultDBPath),
		DBMaxOpenConns:     getEnvAsInt(EnvDBMaxOpenConns, DefaultDBMaxOpenConns),
		SpoonacularBaseURL: getEnv(EnvSpoonacularBaseURL, DefaultSpoonacularBaseURL),
		SpoonacularAPIKey:  getEnv(EnvSpoonacularAPIKey, ""),
		HTTPClientTimeout:  getEnvAsDuration(EnvHTTPClientTimeout, DefaultHTTPClientTimeout),
		ShutdownTimeout:    getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		IdentitySigningKey: getEnv(EnvIdentitySigningKey, DefaultIdentitySigningKey),
		IdentityIssuer:     getEnv(EnvIdentityIssuer, DefaultIdentityIssuer),
		APIKey:             getEnv(EnvAPIKey, ""),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SpoonacularAPIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set", EnvSpoonacularAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints declared in struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration parses a time.Duration environment variable, falling back on absence or parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
