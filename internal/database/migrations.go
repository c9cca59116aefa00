package database

import (
	"context"
	"database/sql"
)

// Values written into the singleton rows the first time they are found unset
const (
	DefaultDisplayName = "Fortune Cookies"
	DefaultMascotName  = "Tux the Wise"
	DefaultMascotColor = "black"
)

// runMigrations creates the schema and guarantees that both singleton rows
// exist and carry their default values. Existing values are never overwritten.
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		statements := []string{
			`CREATE TABLE IF NOT EXISTS quotes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				language TEXT NOT NULL,
				text TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_quotes_language ON quotes(language)`,
			`CREATE TABLE IF NOT EXISTS settings (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				display_name TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS mascot_settings (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				mascot_name TEXT,
				mascot_color TEXT DEFAULT 'black'
			)`,
			`INSERT OR IGNORE INTO settings (id) VALUES (1)`,
			`INSERT OR IGNORE INTO mascot_settings (id) VALUES (1)`,
		}
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		return seedDefaults(ctx, tx)
	})
}

// seedDefaults fills unset singleton columns. NULL and '' both count as unset.
func seedDefaults(ctx context.Context, tx *sql.Tx) error {
	defaults := []struct {
		query string
		value string
	}{
		{`UPDATE settings SET display_name = ? WHERE id = 1 AND (display_name IS NULL OR display_name = '')`, DefaultDisplayName},
		{`UPDATE mascot_settings SET mascot_name = ? WHERE id = 1 AND (mascot_name IS NULL OR mascot_name = '')`, DefaultMascotName},
		{`UPDATE mascot_settings SET mascot_color = ? WHERE id = 1 AND (mascot_color IS NULL OR mascot_color = '')`, DefaultMascotColor},
	}

	for _, d := range defaults {
		if _, err := tx.ExecContext(ctx, d.query, d.value); err != nil {
			return err
		}
	}

	return nil
}
