package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/utils"
)

type suggestOptions struct {
	kind         string
	historyKey   string
	historyValue string
	historyRID   int
	historyCost  int
	noWait       bool
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var so suggestOptions
	cmd := &cobra.Command{
		Use:   "suggest <reading>",
		Short: "Print the ranked candidates for a reading",
		Example: `
  kanarank suggest きょうは
  kanarank suggest は --history-key きょう --history-value 今日 --kind prediction`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			engine, events, err := a.engine(opts.filterModels)
			if err != nil {
				return fmt.Errorf("failed to generate model: %w", err)
			}
			if so.noWait {
				go model.DrainAndLogEvents(events)
			} else if err := model.WaitReady(events); err != nil {
				return fmt.Errorf("failed to load the lexicon: %w", err)
			}

			req := a.cfg.NewRequest(utils.NormalizeKey(strings.TrimSpace(args[0])))
			if so.kind != "" {
				kind, err := entity.ParseRequestKind(so.kind)
				if err != nil {
					return err
				}
				req.Kind = kind
			}
			if so.historyValue != "" {
				req.History = &entity.History{
					Key:     utils.NormalizeKey(so.historyKey),
					Value:   so.historyValue,
					RightID: so.historyRID,
					Cost:    so.historyCost,
				}
			}
			req.Debug = opts.debug

			cands, ok, err := engine.Predict(context.Background(), req)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no candidates for %q", req.Key)
			}
			printCandidates(cmd.OutOrStdout(), cands, req.Debug)
			return nil
		},
	}
	cmd.Flags().StringVar(&so.kind, "kind", "", "request kind (suggestion, prediction, partial_suggestion, partial_prediction)")
	cmd.Flags().StringVar(&so.historyKey, "history-key", "", "reading of the previously committed word")
	cmd.Flags().StringVar(&so.historyValue, "history-value", "", "previously committed word")
	cmd.Flags().IntVar(&so.historyRID, "history-rid", 0, "right context id of the previously committed word")
	cmd.Flags().IntVar(&so.historyCost, "history-cost", 0, "cost the previously committed word was suggested with")
	cmd.Flags().BoolVar(&so.noWait, "no-wait", false, "answer from the store only, without waiting for the lexicon")
	return cmd
}

func printCandidates(w io.Writer, cands []entity.Candidate, debug bool) {
	for i, c := range cands {
		line := fmt.Sprintf("%2d. %s\t%s\t%d", i+1, c.Value, c.Key, c.Cost)
		if c.Description != "" {
			line += "\t" + c.Description
		}
		fmt.Fprintln(w, line)
		if debug {
			for _, l := range c.Log {
				fmt.Fprintf(w, "      %s\n", l)
			}
		}
	}
}
