package store

import (
	"database/sql"
	"strings"

	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/utils"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=store

// Commit is one word the user committed.
type Commit struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
}

// HistoryEntry is a word that followed a given previous word, with how often it did.
type HistoryEntry struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
	Count   int
}

type HistoryStore interface {
	SaveCommits(sentences [][]Commit) error
	Next(prevValue, keyPrefix string, limit int) ([]HistoryEntry, error)
	GetLastProcessedMtime(key, path string) (int64, error)
	UpdateMetadata(key, path string, mtime int64) error
}

type SQLHistoryStore struct {
	db *sql.DB
}

func NewSQLHistoryStore(db *sql.DB) HistoryStore {
	return &SQLHistoryStore{db: db}
}

// SaveCommits records every adjacent pair of each sentence. The first word pairs with an empty previous word.
func (s *SQLHistoryStore) SaveCommits(sentences [][]Commit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO history(prev_key, prev_value, key, value, lid, rid, hash, count)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT(hash) DO UPDATE SET count = count + 1, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sentence := range sentences {
		var prev Commit
		for _, c := range sentence {
			c.Key = strings.TrimSpace(c.Key)
			c.Value = strings.TrimSpace(c.Value)
			if c.Key == "" || c.Value == "" {
				continue
			}
			hash := utils.Hash(prev.Key, prev.Value, c.Key, c.Value)
			if _, err := stmt.Exec(prev.Key, prev.Value, c.Key, c.Value, c.LeftID, c.RightID, hash); err != nil {
				logger.Error("failed to insert commit: %s(%s), %v", c.Value, c.Key, err)
			}
			prev = c
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit history tx: %v", err)
		return err
	}
	return nil
}

// Next returns the words committed after prevValue whose key starts with keyPrefix, most frequent first.
func (s *SQLHistoryStore) Next(prevValue, keyPrefix string, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT key, value, lid, rid, count
		FROM   history
		WHERE  prev_value = ? AND key LIKE ? ESCAPE '\'
		ORDER BY count DESC, updated_at DESC
		LIMIT ?;
	`, prevValue, likePrefix(keyPrefix), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.LeftID, &e.RightID, &e.Count); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLHistoryStore) GetLastProcessedMtime(key, path string) (int64, error) {
	var mtime int64
	err := s.db.QueryRow("SELECT mtime FROM meta WHERE key = ? AND path = ?", key, path).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return mtime, err
}

func (s *SQLHistoryStore) UpdateMetadata(key, path string, mtime int64) error {
	_, err := s.db.Exec(`
		INSERT INTO meta (key, path, mtime)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			path = excluded.path,
			mtime = excluded.mtime`,
		key, path, mtime)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
