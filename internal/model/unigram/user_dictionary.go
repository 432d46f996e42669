package unigram

import (
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
)

const userDictionaryLimit = 20

// UserDictionaryModel returns the words the user registered.
type UserDictionaryModel struct {
	store store.DictionaryStore
}

func NewUserDictionaryModel(dictStore store.DictionaryStore) entity.Aggregator {
	return &UserDictionaryModel{store: dictStore}
}

func (m *UserDictionaryModel) Name() string { return "userdict" }

func (m *UserDictionaryModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.Key == "" {
		return nil, nil
	}
	entries, err := m.store.LookupPrefix(req.Key, userDictionaryLimit)
	if err != nil {
		return nil, err
	}

	results := make([]entity.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginUnigram,
			WordCost:        e.Cost,
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			Attributes:      e.Attributes | entity.AttrUserDictionary,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "user_dictionary",
		})
	}
	return results, nil
}
