package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// envOr reads key after loading .env, for commands that do not need the
// full server configuration
func envOr(key, fallback string) string {
	_ = godotenv.Load()
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// initToolLogger installs a text logger for the maintenance commands
func initToolLogger() {
	logger.InitLogger(logger.NewConfig(
		envOr(config.EnvLogLevel, config.DefaultLogLevel),
		"text",
		config.DefaultServiceName,
		envOr(config.EnvVersion, config.DefaultVersion),
		envOr(config.EnvEnvironment, config.DefaultEnvironment),
		false,
	))
}
