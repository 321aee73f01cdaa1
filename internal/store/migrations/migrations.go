// Package migrations applies the embedded preferences schema to a SQLite
// database. The applied version is kept in PRAGMA user_version.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one embedded schema step, named "NN_description.sql".
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Load returns the embedded migrations ordered by version.
func Load() ([]Migration, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		name := entry.Name()
		prefix, description, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
		if !ok {
			return nil, fmt.Errorf("%s: expected NN_description.sql", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid version: %w", name, err)
		}

		content, err := sqlFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		out = append(out, Migration{Version: version, Description: description, SQL: string(content)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Run applies every migration newer than the database's current version.
func Run(db *sql.DB) error {
	all, err := Load()
	if err != nil {
		return err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	for _, m := range all {
		if m.Version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", m.Version, m.Description, err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the version of the last applied migration, 0 for a
// fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return version, nil
}
