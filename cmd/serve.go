package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer msgpack requests on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			a.launchSyncWorkers()

			engine, events, err := a.engine(opts.filterModels)
			if err != nil {
				return fmt.Errorf("failed to generate model: %w", err)
			}
			go model.DrainAndLogEvents(events)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(engine, a.recorder(), a.cfg.NewRequest, cmd.InOrStdin(), cmd.OutOrStdout())
			return srv.Start(ctx)
		},
	}
}
