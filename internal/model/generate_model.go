package model

import (
	"database/sql"
	"strings"

	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/bigram"
	"github.com/trknhr/kanarank/internal/model/english"
	"github.com/trknhr/kanarank/internal/model/ensemble"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/number"
	"github.com/trknhr/kanarank/internal/model/prefix"
	"github.com/trknhr/kanarank/internal/model/ranking"
	"github.com/trknhr/kanarank/internal/model/realtime"
	"github.com/trknhr/kanarank/internal/model/suffix"
	"github.com/trknhr/kanarank/internal/model/typing"
	"github.com/trknhr/kanarank/internal/model/unigram"
	"github.com/trknhr/kanarank/internal/store"
)

// AllModels lists every aggregator name in pool order.
var AllModels = []string{
	"userdict", "bigram",
	"unigram", "singlekanji", "prefix", "realtime", "suffix", "english", "typing", "number",
}

// LexiconLoader loads the dictionary backing the heavy aggregators.
type LexiconLoader func() (*lexicon.Lexicon, error)

// GenerateModel builds the ensemble. Store backed aggregators answer right away with a flat ranker;
// the lexicon loads in the background, then the real ranker and the lexicon aggregators are swapped in.
// The returned channel reports the lexicon outcome once and is then closed.
func GenerateModel(
	db *sql.DB,
	historyStore store.HistoryStore,
	suggestionFilter entity.SuggestionFilter,
	loadLexicon LexiconLoader,
	filterModels string) (*ensemble.Ensemble, <-chan ModelInitEvent, error) {

	enabled := map[string]bool{}
	if filterModels == "" {
		for _, name := range AllModels {
			enabled[name] = true
		}
	} else {
		for _, name := range strings.Split(filterModels, ",") {
			enabled[strings.TrimSpace(name)] = true
		}
	}

	var lightModels []entity.Aggregator
	if enabled["userdict"] {
		lightModels = append(lightModels, unigram.NewUserDictionaryModel(store.NewSQLDictionaryStore(db)))
	}
	if enabled["bigram"] && historyStore != nil {
		lightModels = append(lightModels, bigram.NewBigramModel(historyStore))
	}

	flat := lexicon.Flat{}
	ensembleModel := ensemble.NewEnsemble(ranking.NewRanker(flat, flat, suggestionFilter, flat, flat), lightModels)

	ch := make(chan ModelInitEvent, 1)
	go func() {
		defer close(ch)
		lex, err := loadLexicon()
		if err != nil {
			ch <- ModelInitEvent{Name: "lexicon", Status: ModelError, Err: err}
			return
		}

		heavy, err := lexiconModels(db, lex, enabled)
		if err != nil {
			ch <- ModelInitEvent{Name: "lexicon", Status: ModelError, Err: err}
			return
		}
		ensembleModel.SetRanker(ranking.NewRanker(lex.Connector, lex.Segmenter, suggestionFilter, lex.Pos, lex.Converter))
		for _, m := range heavy {
			ensembleModel.AddHeavyModel(m)
		}
		ch <- ModelInitEvent{Name: "lexicon", Status: ModelReady}
	}()

	return ensembleModel, ch, nil
}

func lexiconModels(db *sql.DB, lex *lexicon.Lexicon, enabled map[string]bool) ([]entity.Aggregator, error) {
	var models []entity.Aggregator
	if enabled["unigram"] {
		models = append(models, unigram.NewDictionaryModel(lex.Index))
	}
	if enabled["singlekanji"] {
		models = append(models, unigram.NewSingleKanjiModel(lex.Index))
	}
	if enabled["prefix"] {
		models = append(models, prefix.NewPrefixModel(lex.Index))
	}
	if enabled["realtime"] {
		m, err := realtime.NewRealtimeModel(lex.Converter, lex.Index)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if enabled["suffix"] {
		models = append(models, suffix.NewSuffixModel(lex.Particles()))
	}
	if enabled["english"] {
		models = append(models, english.NewEnglishModel(store.NewSQLEnglishStore(db), lex.Pos.GeneralNounID()))
	}
	if enabled["typing"] {
		models = append(models, typing.NewTypingModel(lex.Index))
	}
	if enabled["number"] {
		models = append(models, number.NewNumberModel(lex.Pos.GeneralNounID()))
	}
	return models, nil
}
