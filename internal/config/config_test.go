package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvLogDir, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvDBPath, EnvDBMaxOpenConns, EnvSpoonacularBaseURL, EnvSpoonacularAPIKey,
		EnvHTTPClientTimeout, EnvShutdownTimeout, EnvIdentitySigningKey, EnvIdentityIssuer,
		EnvAPIKey, EnvTrustedProxies, EnvSchemaVersion,
	}
	for _, v := range vars {
		// t.Setenv registers the restore; Unsetenv then removes it for this test.
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "nutrifind", cfg.ServiceName)
		assert.Equal(t, DefaultDBPath, cfg.DBPath)
		assert.Equal(t, DefaultDBMaxOpenConns, cfg.DBMaxOpenConns)
		assert.Equal(t, "https://api.spoonacular.com/", cfg.SpoonacularBaseURL)
		assert.Equal(t, "test-key", cfg.SpoonacularAPIKey)
		assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
		assert.Equal(t, DefaultIdentityIssuer, cfg.IdentityIssuer)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvSpoonacularAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvDBPath, "/var/lib/nutrifind/app.db")
		t.Setenv(EnvDBMaxOpenConns, "8")
		t.Setenv(EnvSpoonacularBaseURL, "http://localhost:9999/")
		t.Setenv(EnvHTTPClientTimeout, "5s")
		t.Setenv(EnvIdentitySigningKey, "0123456789abcdef0123456789abcdef")
		t.Setenv(EnvIdentityIssuer, "nutrifind-test")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.SpoonacularAPIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "/var/lib/nutrifind/app.db", cfg.DBPath)
		assert.Equal(t, 8, cfg.DBMaxOpenConns)
		assert.Equal(t, "http://localhost:9999/", cfg.SpoonacularBaseURL)
		assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
		assert.Equal(t, "nutrifind-test", cfg.IdentityIssuer)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error when SPOONACULAR_API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("returns error for out of range PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")
		t.Setenv(EnvPort, "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("returns error for malformed base URL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")
		t.Setenv(EnvSpoonacularBaseURL, "not a url")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SpoonacularBaseURL")
	})

	t.Run("returns error for short signing key", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")
		t.Setenv(EnvIdentitySigningKey, "short")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "IdentitySigningKey")
	})

	t.Run("unknown log format is rejected", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSpoonacularAPIKey, "test-key")
		t.Setenv(EnvLogFormat, "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})
}
