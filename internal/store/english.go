package store

import (
	"database/sql"
)

type EnglishEntry struct {
	Key   string
	Value string
	Cost  int
}

type EnglishStore interface {
	QueryWords(keyPrefix string, limit int) ([]EnglishEntry, error)
	AddWords(entries []EnglishEntry) error
}

type SQLEnglishStore struct {
	DB *sql.DB
}

func NewSQLEnglishStore(db *sql.DB) EnglishStore {
	return &SQLEnglishStore{DB: db}
}

func (s *SQLEnglishStore) QueryWords(keyPrefix string, limit int) ([]EnglishEntry, error) {
	rows, err := s.DB.Query(`
		SELECT key, value, cost FROM english
		WHERE key LIKE ? ESCAPE '\'
		ORDER BY cost ASC, updated_at DESC LIMIT ?
	`, likePrefix(keyPrefix), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []EnglishEntry
	for rows.Next() {
		var e EnglishEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.Cost); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLEnglishStore) AddWords(entries []EnglishEntry) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.Exec(`
			INSERT INTO english (key, value, cost) VALUES (?, ?, ?)
			ON CONFLICT(key, value) DO UPDATE SET cost = excluded.cost, updated_at = CURRENT_TIMESTAMP
		`, e.Key, e.Value, e.Cost); err != nil {
			return err
		}
	}
	return tx.Commit()
}
