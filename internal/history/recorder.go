package history

import (
	"sync"

	"github.com/trknhr/kanarank/internal/store"
)

// Recorder persists committed sentences: appended to the commit log and learned right away.
// The log mtime is recorded afterwards so the sync worker does not learn the same sentence twice.
type Recorder struct {
	mu     sync.Mutex
	loader *CommitLogLoader
	store  store.HistoryStore
}

func NewRecorder(loader *CommitLogLoader, historyStore store.HistoryStore) *Recorder {
	return &Recorder{loader: loader, store: historyStore}
}

func (r *Recorder) Commit(sentence []store.Commit) error {
	if len(sentence) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := AppendCommits(r.loader.Path(), sentence); err != nil {
		return err
	}
	if err := r.store.SaveCommits([][]store.Commit{sentence}); err != nil {
		return err
	}
	mtime, err := r.loader.GetCurrentMtime()
	if err != nil {
		return err
	}
	return r.store.UpdateMetadata(r.loader.Key(), r.loader.Path(), mtime)
}
