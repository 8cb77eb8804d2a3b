package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/database"
	"github.com/osse101/NutriFind_Go/internal/identity"
)

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	applied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, printStatus(&buf, []database.MigrationStatus{
		{Version: 1, Path: "00001_records.sql", Applied: true, AppliedAt: applied},
		{Version: 2, Path: "00002_preferences.sql"},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "applied")
	assert.Contains(t, lines[1], "2026-03-01 12:00:00")
	assert.Contains(t, lines[2], "pending")
}

func TestMigrateCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.db")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil); dbPath = "" })

	rootCmd.SetArgs([]string{"migrate", "up", "--db", path})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"migrate", "status", "--db", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "applied")
	assert.NotContains(t, out.String(), "pending")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv(config.EnvIdentitySigningKey, "cli-test-signing-key-000")
	t.Setenv(config.EnvIdentityIssuer, "nutrifind")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"token", "--subject", "cook-1", "--email", "cook@example.com", "--ttl", "1h"})
	require.NoError(t, rootCmd.Execute())

	claims, err := identity.NewVerifier("cli-test-signing-key-000", "nutrifind").Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "cook-1", claims.Subject)
	assert.Equal(t, "cook@example.com", claims.Email)
}
