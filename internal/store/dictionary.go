package store

import (
	"database/sql"
	"strings"

	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/entity"
)

//go:generate mockgen -source=dictionary.go -destination=mock_dictionary.go -package=store

// DictEntry is a user dictionary word.
type DictEntry struct {
	Key        string
	Value      string
	LeftID     int
	RightID    int
	Cost       int
	Attributes entity.Attribute
}

type DictionaryStore interface {
	AddEntries(entries []DictEntry) error
	RemoveEntry(key, value string) error
	LookupPrefix(prefix string, limit int) ([]DictEntry, error)
}

type SQLDictionaryStore struct {
	db *sql.DB
}

func NewSQLDictionaryStore(db *sql.DB) DictionaryStore {
	return &SQLDictionaryStore{db: db}
}

func (s *SQLDictionaryStore) AddEntries(entries []DictEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO dictionary(key, value, lid, rid, cost, attributes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key, value) DO UPDATE SET
			lid = excluded.lid,
			rid = excluded.rid,
			cost = excluded.cost,
			attributes = excluded.attributes
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		key := strings.TrimSpace(e.Key)
		value := strings.TrimSpace(e.Value)
		if key == "" || value == "" {
			continue
		}
		if _, err := stmt.Exec(key, value, e.LeftID, e.RightID, e.Cost, uint32(e.Attributes)); err != nil {
			logger.Error("failed to insert dictionary entry: %s(%s), %v", value, key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLDictionaryStore) RemoveEntry(key, value string) error {
	_, err := s.db.Exec(`DELETE FROM dictionary WHERE key = ? AND value = ?`, key, value)
	return err
}

// LookupPrefix returns entries whose key starts with prefix, cheapest first.
func (s *SQLDictionaryStore) LookupPrefix(prefix string, limit int) ([]DictEntry, error) {
	rows, err := s.db.Query(`
		SELECT key, value, lid, rid, cost, attributes
		FROM   dictionary
		WHERE  key LIKE ? ESCAPE '\'
		ORDER BY cost ASC, id ASC
		LIMIT ?;
	`, likePrefix(prefix), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []DictEntry
	for rows.Next() {
		var e DictEntry
		var attrs uint32
		if err := rows.Scan(&e.Key, &e.Value, &e.LeftID, &e.RightID, &e.Cost, &attrs); err != nil {
			continue
		}
		e.Attributes = entity.Attribute(attrs)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
