package worker

import (
	"sync"

	"github.com/trknhr/kanarank/internal/logger"
)

type SyncWorker interface {
	Key() string
	Path() string
	NeedsReload() bool
	Sync() error
}

// LaunchSyncWorkers runs every stale worker in its own goroutine. The returned WaitGroup completes when all are done.
func LaunchSyncWorkers(syncers ...SyncWorker) *sync.WaitGroup {
	var wg sync.WaitGroup
	for _, s := range syncers {
		wg.Add(1)
		go func(s SyncWorker) {
			defer wg.Done()
			if !s.NeedsReload() {
				logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
				return
			}
			if err := s.Sync(); err != nil {
				logger.Error("[%s] sync failed: %v", s.Key(), err)
			} else {
				logger.Info("[%s] sync done", s.Key())
			}
		}(s)
	}
	return &wg
}
