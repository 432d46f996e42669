package worker

import (
	"context"

	"github.com/trknhr/kanarank/internal/history"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/store"
)

// HistorySyncWorker learns word pairs from the commit log.
type HistorySyncWorker struct {
	store  store.HistoryStore
	loader history.HistoryLoader
	seg    history.Segmenter
}

// NewHistorySyncWorker returns a worker over loader. seg splits plain text lines and may be nil.
func NewHistorySyncWorker(store store.HistoryStore, loader history.HistoryLoader, seg history.Segmenter) *HistorySyncWorker {
	return &HistorySyncWorker{store, loader, seg}
}

func (h *HistorySyncWorker) Key() string  { return h.loader.Key() }
func (h *HistorySyncWorker) Path() string { return h.loader.Path() }
func (h *HistorySyncWorker) NeedsReload() bool {
	last, err := h.store.GetLastProcessedMtime(h.Key(), h.Path())
	if err != nil {
		return true
	}
	curr, err := h.loader.GetCurrentMtime()
	if err != nil {
		return false // no log yet
	}
	return curr > last
}

func (h *HistorySyncWorker) Sync() error {
	curr, err := h.loader.GetCurrentMtime()
	if err != nil {
		return err
	}
	return h.learn(context.Background(), curr)
}

// learn imports every sentence of the log and stamps it with mtime.
func (h *HistorySyncWorker) learn(ctx context.Context, mtime int64) error {
	lines, err := h.loader.LoadLines()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sentences := history.ParseSentences(lines, h.seg)
	if err := h.store.SaveCommits(sentences); err != nil {
		return err
	}
	logger.Debug("[%s] learned %d sentences from %s", h.Key(), len(sentences), h.Path())

	return h.store.UpdateMetadata(h.Key(), h.Path(), mtime)
}
