package english_test

import (
	"database/sql"
	"testing"

	"github.com/trknhr/kanarank/internal/model/english"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
	_ "github.com/tursodatabase/go-libsql"
)

func setupEnglishTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	err = store.NewSQLEnglishStore(db).AddWords([]store.EnglishEntry{
		{Key: "あっぷる", Value: "apple", Cost: 3000},
		{Key: "あっぷ", Value: "up", Cost: 2500},
		{Key: "おれんじ", Value: "orange", Cost: 3000},
	})
	if err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return db
}

func TestEnglishModel_Aggregate(t *testing.T) {
	db := setupEnglishTestDB(t)
	model := english.NewEnglishModel(store.NewSQLEnglishStore(db), 42)

	results, err := model.Aggregate(&entity.Request{Key: "あっぷ"})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if results[0].Value != "up" || results[1].Value != "apple" {
		t.Errorf("unexpected order: %s, %s", results[0].Value, results[1].Value)
	}
	for _, r := range results {
		if r.Origin != entity.OriginEnglish || r.LeftID != 42 || r.RightID != 42 {
			t.Errorf("unexpected record: %+v", r)
		}
	}

	results, err = model.Aggregate(&entity.Request{Key: ""})
	if err != nil || len(results) != 0 {
		t.Errorf("expected nothing for an empty key, got %v %v", results, err)
	}
}
