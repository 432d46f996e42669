package english

import (
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
)

const englishLimit = 10

// EnglishModel transliterates a kana input into English words, あっぷる to apple.
type EnglishModel struct {
	store store.EnglishStore
	posID int
}

// NewEnglishModel tags the words with posID as both left and right id.
func NewEnglishModel(englishStore store.EnglishStore, posID int) entity.Aggregator {
	return &EnglishModel{store: englishStore, posID: posID}
}

func (m *EnglishModel) Name() string { return "english" }

func (m *EnglishModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.Key == "" {
		return nil, nil
	}
	entries, err := m.store.QueryWords(req.Key, englishLimit)
	if err != nil {
		return nil, err
	}

	var results []entity.Result
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginEnglish,
			WordCost:        e.Cost,
			LeftID:          m.posID,
			RightID:         m.posID,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "english",
		})
	}
	return results, nil
}
