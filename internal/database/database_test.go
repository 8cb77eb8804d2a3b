package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestOpen_RejectsBlankPath(t *testing.T) {
	_, err := Open(context.Background(), "   ", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPathRequired)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")

	db, err := Open(context.Background(), path, 0)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestOpenAndMigrate_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := OpenAndMigrate(context.Background(), path, 2)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"favourite_recipes", "recipe_history", "shopping_list", "preferences"} {
		assert.True(t, tableExists(t, db, table), "missing table %s", table)
	}
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "app.db"), 1)
	require.NoError(t, err)
	defer db.Close()

	migrator, err := NewMigrator(db)
	require.NoError(t, err)

	require.NoError(t, migrator.Up(ctx))
	require.NoError(t, migrator.Up(ctx))

	version, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestMigrator_DownAndStatus(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "app.db"), 1)
	require.NoError(t, err)
	defer db.Close()

	migrator, err := NewMigrator(db)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx))

	require.NoError(t, migrator.Down(ctx))
	assert.True(t, tableExists(t, db, "preferences"))
	require.NoError(t, migrator.Down(ctx))
	assert.False(t, tableExists(t, db, "preferences"))
	assert.True(t, tableExists(t, db, "shopping_list"))

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, int64(1), statuses[0].Version)
	assert.True(t, statuses[0].Applied)
	assert.Equal(t, int64(2), statuses[1].Version)
	assert.False(t, statuses[1].Applied)
	assert.False(t, statuses[2].Applied)
}

func TestMigrator_KeepsDataAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := OpenAndMigrate(ctx, path, 1)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO preferences (key, value) VALUES ('dark_mode', 'true')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenAndMigrate(ctx, path, 1)
	require.NoError(t, err)
	defer db.Close()

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM preferences WHERE key = 'dark_mode'`).Scan(&value))
	assert.Equal(t, "true", value)
}
