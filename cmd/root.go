package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/tui"
)

// OpenFileForTTY opens the terminal the TUI reads keys from.
var OpenFileForTTY = os.OpenFile

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	return newRootCmd(opts)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kanarank [reading]",
		Short:         "Rank kana-kanji conversion candidates interactively",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}

			a.launchSyncWorkers()
			engine, events, err := a.engine(opts.filterModels)
			if err != nil {
				return fmt.Errorf("failed to generate model: %w", err)
			}
			go model.DrainAndLogEvents(events)

			tty, err := OpenFileForTTY("/dev/tty", os.O_RDWR, 0)
			if err != nil {
				return fmt.Errorf("failed to open tty: %w", err)
			}
			defer tty.Close()

			restore := a.redirectLogs()
			defer restore()

			session := tui.NewTuiModel(engine, a.cfg.NewRequest, a.recorder(), initial)
			p := tea.NewProgram(session, tea.WithAltScreen(),
				tea.WithInput(tty),
				tea.WithOutput(os.Stderr),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			if text := session.SelectedText(); text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
	opts.bindFlags(cmd)

	cmd.AddCommand(
		newSuggestCmd(opts),
		newEvalCmd(opts),
		newDictCmd(opts),
		newLoadHistoryCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}
