package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/trknhr/kanarank/internal/utils"
)

const defaultUserWordCost = 3000

type dictOptions struct {
	cost int
	id   int
}

func newDictCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the user dictionary and the English word table",
	}
	cmd.AddCommand(
		newDictAddCmd(opts),
		newDictRemoveCmd(opts),
		newDictImportCmd(opts),
		newDictImportEnglishCmd(opts),
	)
	return cmd
}

// contextID returns the explicit --id, or the general noun id of the lexicon.
func (o *dictOptions) contextID(a *app) (int, error) {
	if o.id >= 0 {
		return o.id, nil
	}
	lex, err := a.lexicon()
	if err != nil {
		return 0, fmt.Errorf("failed to load the lexicon for the default word class: %w", err)
	}
	return lex.Pos.GeneralNounID(), nil
}

func (o *dictOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.cost, "cost", defaultUserWordCost, "word cost, lower ranks higher")
	cmd.Flags().IntVar(&o.id, "id", -1, "left/right context id (default: general noun)")
}

func newDictAddCmd(opts *rootOptions) *cobra.Command {
	var do dictOptions
	cmd := &cobra.Command{
		Use:   "add <reading> <word>",
		Short: "Add one word to the user dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := do.contextID(opts.app)
			if err != nil {
				return err
			}
			entry := store.DictEntry{
				Key:     utils.NormalizeKey(args[0]),
				Value:   strings.TrimSpace(args[1]),
				LeftID:  id,
				RightID: id,
				Cost:    do.cost,
			}
			if entry.Key == "" || entry.Value == "" {
				return fmt.Errorf("reading and word must not be empty")
			}
			return store.NewSQLDictionaryStore(opts.app.db).AddEntries([]store.DictEntry{entry})
		},
	}
	do.bind(cmd)
	return cmd
}

func newDictRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <reading> <word>",
		Short: "Remove one word from the user dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.NewSQLDictionaryStore(opts.app.db).RemoveEntry(utils.NormalizeKey(args[0]), strings.TrimSpace(args[1]))
		},
	}
}

func newDictImportCmd(opts *rootOptions) *cobra.Command {
	var do dictOptions
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a TSV file of reading<TAB>word[<TAB>cost] lines into the user dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := do.contextID(opts.app)
			if err != nil {
				return err
			}
			var entries []store.DictEntry
			err = readTSV(args[0], func(fields []string) {
				entries = append(entries, store.DictEntry{
					Key:     utils.NormalizeKey(fields[0]),
					Value:   fields[1],
					LeftID:  id,
					RightID: id,
					Cost:    optionalInt(fields, 2, do.cost),
				})
			})
			if err != nil {
				return err
			}
			if err := store.NewSQLDictionaryStore(opts.app.db).AddEntries(entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words\n", len(entries))
			return nil
		},
	}
	do.bind(cmd)
	return cmd
}

func newDictImportEnglishCmd(opts *rootOptions) *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "import-english <file>",
		Short: "Import a TSV file of reading<TAB>english[<TAB>cost] lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []store.EnglishEntry
			err := readTSV(args[0], func(fields []string) {
				entries = append(entries, store.EnglishEntry{
					Key:   utils.NormalizeKey(fields[0]),
					Value: fields[1],
					Cost:  optionalInt(fields, 2, cost),
				})
			})
			if err != nil {
				return err
			}
			if err := store.NewSQLEnglishStore(opts.app.db).AddWords(entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words\n", len(entries))
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", defaultUserWordCost, "word cost, lower ranks higher")
	return cmd
}

// readTSV calls fn for every line with at least two non-empty fields. '#' lines are comments.
func readTSV(path string, fn func(fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			logger.Warn("%s:%d: expected reading<TAB>word", path, lineNo)
			continue
		}
		fn(fields)
	}
	return scanner.Err()
}

func optionalInt(fields []string, i, def int) int {
	if i >= len(fields) {
		return def
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return def
	}
	return n
}
