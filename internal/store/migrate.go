package store

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		// dictionary: user dictionary entries, looked up by key prefix
		`CREATE TABLE IF NOT EXISTS dictionary (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			key         TEXT NOT NULL,
			value       TEXT NOT NULL,
			lid         INTEGER NOT NULL DEFAULT 0,
			rid         INTEGER NOT NULL DEFAULT 0,
			cost        INTEGER NOT NULL DEFAULT 5000,
			attributes  INTEGER NOT NULL DEFAULT 0,
			created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(key, value)
		);`,
		"CREATE INDEX IF NOT EXISTS idx_dictionary_key ON dictionary(key);",
		// history: committed word pairs, prev_* is empty at the start of a sentence
		`CREATE TABLE IF NOT EXISTS history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			prev_key    TEXT NOT NULL DEFAULT '',
			prev_value  TEXT NOT NULL DEFAULT '',
			key         TEXT NOT NULL,
			value       TEXT NOT NULL,
			lid         INTEGER NOT NULL DEFAULT 0,
			rid         INTEGER NOT NULL DEFAULT 0,
			hash        TEXT NOT NULL UNIQUE,
			count       INTEGER NOT NULL DEFAULT 1,
			updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		"CREATE INDEX IF NOT EXISTS idx_history_prev_value ON history(prev_value, key);",
		`CREATE TABLE IF NOT EXISTS english (
			key         TEXT NOT NULL,
			value       TEXT NOT NULL,
			cost        INTEGER NOT NULL DEFAULT 5000,
			updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (key, value)
		);`,
		`CREATE TABLE IF NOT EXISTS blocklist (
			value TEXT PRIMARY KEY
		);`,
		// meta: latest processed mtime of the commit log etc
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
