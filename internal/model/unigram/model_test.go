package unigram_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/unigram"
	"github.com/trknhr/kanarank/internal/store"
)

func newTestIndex() *lexicon.Index {
	ix := lexicon.NewIndex()
	ix.Add(lexicon.Entry{Key: "き", Value: "木", LeftID: 1, RightID: 1, Cost: 2000})
	ix.Add(lexicon.Entry{Key: "き", Value: "気", LeftID: 1, RightID: 1, Cost: 2500})
	ix.Add(lexicon.Entry{Key: "き", Value: "きき", LeftID: 1, RightID: 1, Cost: 9000})
	ix.Add(lexicon.Entry{Key: "きょう", Value: "今日", LeftID: 2, RightID: 2, Cost: 1500})
	return ix
}

func TestDictionaryModel_Aggregate(t *testing.T) {
	m := unigram.NewDictionaryModel(newTestIndex())
	assert.Equal(t, "unigram", m.Name())

	results, err := m.Aggregate(&entity.Request{Key: "き", Kind: entity.KindPrediction})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "今日", results[0].Value)
	assert.Equal(t, 1500, results[0].WordCost)
	assert.Equal(t, 1, results[0].ConsumedKeySize)
	for _, r := range results {
		assert.Equal(t, entity.OriginUnigram, r.Origin)
	}

	empty, err := m.Aggregate(&entity.Request{Key: ""})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSingleKanjiModel_Aggregate(t *testing.T) {
	m := unigram.NewSingleKanjiModel(newTestIndex())

	results, err := m.Aggregate(&entity.Request{Key: "き"})
	require.NoError(t, err)
	assert.Empty(t, results, "only mixed conversion asks for single kanji")

	results, err = m.Aggregate(&entity.Request{Key: "き", MixedConversion: true})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "木", results[0].Value)
	assert.Equal(t, "気", results[1].Value)
	assert.True(t, results[0].Origin.Has(entity.OriginSingleKanji))
}

func TestUserDictionaryModel_Aggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := store.NewMockDictionaryStore(ctrl)
	mock.EXPECT().
		LookupPrefix("ばっく", 20).
		Return([]store.DictEntry{
			{Key: "ばっく", Value: "バッグ", Cost: 3000, Attributes: entity.AttrSpellingCorrection},
		}, nil)

	m := unigram.NewUserDictionaryModel(mock)
	results, err := m.Aggregate(&entity.Request{Key: "ばっく"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Attributes.Has(entity.AttrUserDictionary))
	assert.True(t, results[0].Attributes.Has(entity.AttrSpellingCorrection))
	assert.Equal(t, 3000, results[0].WordCost)
}

func TestUserDictionaryModel_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := store.NewMockDictionaryStore(ctrl)
	mock.EXPECT().LookupPrefix(gomock.Any(), gomock.Any()).Return(nil, errors.New("db closed"))

	_, err := unigram.NewUserDictionaryModel(mock).Aggregate(&entity.Request{Key: "か"})
	assert.Error(t, err)
}
