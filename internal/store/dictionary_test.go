package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
)

func TestSQLDictionaryStore(t *testing.T) {
	db := setupMigratedDB(t)
	s := store.NewSQLDictionaryStore(db)

	require.NoError(t, s.AddEntries([]store.DictEntry{
		{Key: "かんじ", Value: "漢字", Cost: 3000},
		{Key: "かんじ", Value: "幹事", Cost: 4000},
		{Key: "ばっく", Value: "バッグ", Cost: 2000, Attributes: entity.AttrSpellingCorrection},
		{Key: " ", Value: "ignored"},
	}))
	// upsert keeps one row per key and value
	require.NoError(t, s.AddEntries([]store.DictEntry{{Key: "かんじ", Value: "幹事", Cost: 1000}}))

	got, err := s.LookupPrefix("かん", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "幹事", got[0].Value)
	assert.Equal(t, 1000, got[0].Cost)
	assert.Equal(t, "漢字", got[1].Value)

	got, err = s.LookupPrefix("ばっく", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Attributes.Has(entity.AttrSpellingCorrection))

	require.NoError(t, s.RemoveEntry("かんじ", "幹事"))
	got, err = s.LookupPrefix("", 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLEnglishStore(t *testing.T) {
	db := setupMigratedDB(t)
	s := store.NewSQLEnglishStore(db)

	require.NoError(t, s.AddWords([]store.EnglishEntry{
		{Key: "あっぷる", Value: "apple", Cost: 3000},
		{Key: "あっぷ", Value: "up", Cost: 2000},
		{Key: "ばす", Value: "bus", Cost: 2000},
	}))

	got, err := s.QueryWords("あっぷ", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "up", got[0].Value)
	assert.Equal(t, "apple", got[1].Value)
}

func TestBlocklistStore(t *testing.T) {
	db := setupMigratedDB(t)
	b := store.NewBlocklistStore(db)

	require.NoError(t, b.Add([]string{"悪口", "  ", "悪口", "罵倒"}))
	values, err := b.All()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"悪口", "罵倒"}, values)
}
