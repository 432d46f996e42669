package model_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/trknhr/kanarank/internal/filter"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
	_ "github.com/tursodatabase/go-libsql"
)

type grid map[[2]int]int16

func (g grid) At(row, col int) int16 { return g[[2]int{row, col}] }

func smallLexicon() (*lexicon.Lexicon, error) {
	ix := lexicon.NewIndex()
	ix.Add(lexicon.Entry{Key: "きょう", Value: "今日", LeftID: 1, RightID: 1, Cost: 3000})
	ix.Add(lexicon.Entry{Key: "は", Value: "は", LeftID: 2, RightID: 2, Cost: 500})

	pos := lexicon.NewPosTable(map[int][]string{
		1: {"名詞", "一般", "*", "*"},
		2: {"助詞", "係助詞", "*", "*"},
	})
	conn := lexicon.NewConnector(grid{}, 3, 3)
	return &lexicon.Lexicon{
		Index:     ix,
		Pos:       pos,
		Connector: conn,
		Segmenter: lexicon.NewSegmenter(pos),
		Converter: lexicon.NewConverter(ix, conn, pos.GeneralNounID()),
	}, nil
}

func setupDB(t *testing.T) *sql.DB {
	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func TestGenerateModel_LoadsLexicon(t *testing.T) {
	db := setupDB(t)
	f := filter.NewSuggestionFilter(nil, 0, 0)

	ensembleModel, ch, err := model.GenerateModel(db, store.NewSQLHistoryStore(db), f, smallLexicon, "")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}

	if err := model.WaitReady(ch); err != nil {
		t.Fatalf("lexicon failed to load: %v", err)
	}

	aggregators := ensembleModel.Models.Load().([]entity.Aggregator)
	if len(aggregators) != len(model.AllModels) {
		t.Fatalf("expected %d aggregators, got %d", len(model.AllModels), len(aggregators))
	}
	for i, a := range aggregators {
		if a.Name() != model.AllModels[i] {
			t.Errorf("aggregator %d: got %s, want %s", i, a.Name(), model.AllModels[i])
		}
	}

	req := &entity.Request{Key: "きょう", Kind: entity.KindPrediction, MaxCandidates: 5, Tuning: entity.DefaultTuning()}
	cands, ok, err := ensembleModel.Predict(context.Background(), req)
	if err != nil || !ok {
		t.Fatalf("Predict failed: %v %v", ok, err)
	}
	if cands[0].Value != "今日" {
		t.Errorf("expected 今日 first, got %+v", cands)
	}
}

func TestGenerateModel_FilterModels(t *testing.T) {
	db := setupDB(t)

	ensembleModel, ch, err := model.GenerateModel(db, nil, filter.NewSuggestionFilter(nil, 0, 0), smallLexicon, "userdict, realtime")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}
	if err := model.WaitReady(ch); err != nil {
		t.Fatalf("lexicon failed to load: %v", err)
	}

	aggregators := ensembleModel.Models.Load().([]entity.Aggregator)
	if len(aggregators) != 2 || aggregators[0].Name() != "userdict" || aggregators[1].Name() != "realtime" {
		t.Errorf("unexpected aggregators: %v", aggregators)
	}
}

func TestGenerateModel_LexiconError(t *testing.T) {
	db := setupDB(t)
	failing := func() (*lexicon.Lexicon, error) { return nil, errors.New("no dictionary") }

	ensembleModel, ch, err := model.GenerateModel(db, store.NewSQLHistoryStore(db), filter.NewSuggestionFilter(nil, 0, 0), failing, "")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}
	if err := model.WaitReady(ch); err == nil {
		t.Fatalf("expected the lexicon error to be reported")
	}

	aggregators := ensembleModel.Models.Load().([]entity.Aggregator)
	if len(aggregators) != 2 {
		t.Errorf("expected only the store backed aggregators, got %d", len(aggregators))
	}
}
