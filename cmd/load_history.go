package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/worker"
)

func newLoadHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load-history",
		Short: "Learn bigrams from the commit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			lockFile := filepath.Join(os.TempDir(), "kanarank-history.lock")
			f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
			if err != nil {
				logger.Debug("load-history already running")
				return nil
			}
			defer os.Remove(lockFile)
			defer f.Close()

			logger.Debug("started load-history worker")

			ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
			defer cancel()

			a := opts.app
			return worker.RunHistoryWorker(ctx, a.historyStore, a.commitLog, a.segmenter())
		},
	}
}
