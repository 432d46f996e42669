package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/config"
	"github.com/trknhr/kanarank/internal/filter"
	"github.com/trknhr/kanarank/internal/history"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/model/ensemble"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/trknhr/kanarank/internal/worker"
)

// app holds what every subcommand shares once the config is loaded.
type app struct {
	cfg          *config.Config
	db           *sql.DB
	historyStore store.HistoryStore
	filter       *filter.SuggestionFilter
	commitLog    *history.CommitLogLoader
	lexicon      model.LexiconLoader
}

type rootOptions struct {
	configPath    string
	debug         bool
	filterModels  string
	maxCandidates int
	mixed         bool

	// loadLexicon is swapped in tests
	loadLexicon model.LexiconLoader
	app         *app
}

func (o *rootOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "path to config.toml")
	f.BoolVar(&o.debug, "debug", false, "debug logging and per candidate ranking logs")
	f.StringVar(&o.filterModels, "filter-models", "", "[dev] comma-separated aggregator list (userdict,bigram,unigram,singlekanji,prefix,realtime,suffix,english,typing,number)")
	f.IntVar(&o.maxCandidates, "max-candidates", 0, "number of candidates to return")
	f.BoolVar(&o.mixed, "mixed", false, "mixed conversion mode")
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, path, err := config.LoadConfigWithPriority(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-candidates") {
		cfg.Request.MaxCandidates = o.maxCandidates
	}
	if cmd.Flags().Changed("mixed") {
		cfg.Request.MixedConversion = o.mixed
	}
	level := cfg.Log.Level
	if o.debug {
		level = "debug"
	}
	if err := logger.Init(cfg.Log.File, level); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if path != "" {
		logger.Debug("using config %s", path)
	}

	db, err := store.Open(cfg.Dictionary.DBPath)
	if err != nil {
		return err
	}

	blocked, err := store.NewBlocklistStore(db).All()
	if err != nil {
		logger.Warn("failed to read blocklist: %v", err)
	}

	var loadLexicon func() (*lexicon.Lexicon, error) = o.loadLexicon
	if loadLexicon == nil {
		loadLexicon = lexicon.Load
	}

	o.app = &app{
		cfg:          cfg,
		db:           db,
		historyStore: store.NewSQLHistoryStore(db),
		filter:       filter.NewSuggestionFilter(blocked, cfg.Filter.ExpectedItems, cfg.Filter.FalsePositiveRate),
		commitLog:    history.NewCommitLogLoader(cfg.History.CommitLogPath),
		lexicon:      sync.OnceValues(loadLexicon),
	}
	return nil
}

func (o *rootOptions) close() {
	if o.app != nil && o.app.db != nil {
		o.app.db.Close()
	}
}

func (a *app) engine(filterModels string) (*ensemble.Ensemble, <-chan model.ModelInitEvent, error) {
	return model.GenerateModel(a.db, a.historyStore, a.filter, a.lexicon, filterModels)
}

// segmenter is the lexicon tokenizer, loaded on first use.
func (a *app) segmenter() history.Segmenter {
	return lazySegmenter{a.lexicon}
}

type lazySegmenter struct{ load model.LexiconLoader }

func (s lazySegmenter) Segment(text string) []lexicon.Word {
	lex, err := s.load()
	if err != nil {
		logger.WarnOnce("cannot segment plain text without the lexicon: %v", err)
		return nil
	}
	return lex.Segment(text)
}

func (a *app) recorder() *history.Recorder {
	return history.NewRecorder(a.commitLog, a.historyStore)
}

// launchSyncWorkers refreshes the store from the commit log and the blocklist file in the background.
func (a *app) launchSyncWorkers() *sync.WaitGroup {
	workers := []worker.SyncWorker{
		worker.NewHistorySyncWorker(a.historyStore, a.commitLog, a.segmenter()),
	}
	if a.cfg.Filter.BlocklistPath != "" {
		workers = append(workers, worker.NewBlocklistSyncWorker(
			a.cfg.Filter.BlocklistPath,
			store.NewBlocklistStore(a.db),
			a.filter,
			store.NewMetaStore(a.db),
		))
	}
	return worker.LaunchSyncWorkers(workers...)
}

// redirectLogs keeps the log away from a terminal owned by the TUI. The returned func restores stderr.
func (a *app) redirectLogs() func() {
	var w io.Writer = io.Discard
	var f *os.File
	if a.cfg.Log.File != "" {
		var err error
		f, err = os.OpenFile(a.cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			w = f
		}
	}
	logger.SetOutput(w)
	return func() {
		logger.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	}
}
