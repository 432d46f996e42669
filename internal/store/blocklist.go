package store

import (
	"database/sql"
	"strings"
)

type BlocklistStore struct {
	db *sql.DB
}

func NewBlocklistStore(db *sql.DB) *BlocklistStore {
	return &BlocklistStore{db: db}
}

func (b *BlocklistStore) Add(values []string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, err := tx.Exec(`INSERT OR IGNORE INTO blocklist (value) VALUES (?)`, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (b *BlocklistStore) All() ([]string, error) {
	rows, err := b.db.Query(`SELECT value FROM blocklist`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
