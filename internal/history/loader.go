package history

import (
	"os"
	"path/filepath"
)

//go:generate mockgen -source=loader.go -destination=mock_loader.go -package=history

type HistoryLoader interface {
	LoadTail(n int) ([]string, error)
	LoadLines() ([]string, error)
	GetCurrentMtime() (int64, error)
	Path() string
	Key() string
}

// DefaultCommitLogPath is where committed sentences are appended, next to the database.
func DefaultCommitLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.Getenv("HOME"), ".kanarank_commits")
	}
	return filepath.Join(cacheDir, "kanarank", "commit_log")
}

type CommitLogLoader struct {
	path string
}

func NewCommitLogLoader(path string) *CommitLogLoader {
	if path == "" {
		path = DefaultCommitLogPath()
	}
	return &CommitLogLoader{path: path}
}

func (c *CommitLogLoader) LoadTail(n int) ([]string, error) {
	return loadTail(c.path, n)
}

func (c *CommitLogLoader) LoadLines() ([]string, error) {
	return loadLines(c.path)
}

func (c *CommitLogLoader) GetCurrentMtime() (int64, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().Unix(), nil
}

func (c *CommitLogLoader) Path() string {
	return c.path
}

func (c *CommitLogLoader) Key() string {
	return "commit_log"
}
