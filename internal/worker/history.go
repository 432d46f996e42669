package worker

import (
	"context"

	"github.com/trknhr/kanarank/internal/history"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/store"
)

// RunHistoryWorker imports the commit log once if it changed since the last run.
// Unlike NeedsReload, store and stat errors are returned to the caller.
func RunHistoryWorker(ctx context.Context, historyStore store.HistoryStore, loader history.HistoryLoader, seg history.Segmenter) error {
	lastMtime, err := historyStore.GetLastProcessedMtime(loader.Key(), loader.Path())
	if err != nil {
		return err
	}
	currentMtime, err := loader.GetCurrentMtime()
	if err != nil {
		return err
	}
	if currentMtime <= lastMtime {
		logger.Debug("commit log not modified since last import")
		return nil
	}

	return NewHistorySyncWorker(historyStore, loader, seg).learn(ctx, currentMtime)
}
