package unigram

import (
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/utils"
)

const (
	suggestionLimit  = 30
	predictionLimit  = 100
	singleKanjiLimit = 20
)

// DictionaryModel returns the lexicon words whose reading starts with the input.
type DictionaryModel struct {
	index *lexicon.Index
}

func NewDictionaryModel(index *lexicon.Index) entity.Aggregator {
	return &DictionaryModel{index: index}
}

func (m *DictionaryModel) Name() string { return "unigram" }

func (m *DictionaryModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.Key == "" {
		return nil, nil
	}
	limit := predictionLimit
	if req.Kind.IsSuggestion() {
		limit = suggestionLimit
	}

	consumed := entity.CharLen(req.Key)
	entries := m.index.Predictive(req.Key, limit)
	results := make([]entity.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginUnigram,
			WordCost:        e.Cost,
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			ConsumedKeySize: consumed,
			SourceInfo:      "unigram",
		})
	}
	return results, nil
}

// SingleKanjiModel returns one character kanji readings of the whole input. Only mixed conversion uses it.
type SingleKanjiModel struct {
	index *lexicon.Index
}

func NewSingleKanjiModel(index *lexicon.Index) entity.Aggregator {
	return &SingleKanjiModel{index: index}
}

func (m *SingleKanjiModel) Name() string { return "singlekanji" }

func (m *SingleKanjiModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if !req.MixedConversion || req.Key == "" {
		return nil, nil
	}

	var results []entity.Result
	for _, e := range m.index.Lookup(req.Key) {
		if !utils.IsSingleKanji(e.Value) {
			continue
		}
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginSingleKanji,
			WordCost:        e.Cost,
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "single_kanji",
		})
		if len(results) >= singleKanjiLimit {
			break
		}
	}
	return results, nil
}
