package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	require.Equal(t, 1, all[0].Version)
	require.Equal(t, "create_preferences", all[0].Description)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestRun_CreatesPreferencesTable(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec("INSERT INTO preferences (key, value) VALUES ('AMICLY_THEME', 'dark')")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow("SELECT value FROM preferences WHERE key = 'AMICLY_THEME'").Scan(&value))
	require.Equal(t, "dark", value)
}

func TestCurrentVersion(t *testing.T) {
	db := openMemory(t)

	v, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, v)

	all, err := migrations.Load()
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	v, err = migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, all[len(all)-1].Version, v)
}
