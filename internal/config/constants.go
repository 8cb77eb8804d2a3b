package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvDBPath             = "DB_PATH"
	EnvDBMaxOpenConns     = "DB_MAX_OPEN_CONNS"
	EnvSpoonacularBaseURL = "SPOONACULAR_BASE_URL"
	EnvSpoonacularAPIKey  = "SPOONACULAR_API_KEY"
	EnvHTTPClientTimeout  = "HTTP_CLIENT_TIMEOUT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT"
	EnvIdentitySigningKey = "IDENTITY_SIGNING_KEY"
	EnvIdentityIssuer     = "IDENTITY_ISSUER"
	EnvAPIKey             = "API_KEY"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvSchemaVersion      = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "nutrifind"
	DefaultVersion            = "dev"
	DefaultDBPath             = "data/nutrifind.db"
	DefaultDBMaxOpenConns     = 4
	DefaultSpoonacularBaseURL = "https://api.spoonacular.com/"
	DefaultHTTPClientTimeout  = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultIdentityIssuer     = "nutrifind"
	DefaultIdentitySigningKey = "dev-signing-key-change-me"
)

// Example values shipped in .env.example
const (
	ExampleSpoonacularAPIKey = "your_spoonacular_api_key"
)
