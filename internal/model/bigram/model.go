package bigram

import (
	"math"

	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
)

const (
	nextLimit = 20

	// a pair committed once costs as much as a common word, each repeat makes it cheaper
	historyBaseCost = 3000
	costFactor      = 500
)

// BigramModel predicts the words the user committed after the previous word before.
// Keys and values carry the previous word in front, the ranker strips it.
type BigramModel struct {
	store store.HistoryStore
}

func NewBigramModel(historyStore store.HistoryStore) entity.Aggregator {
	return &BigramModel{store: historyStore}
}

func (m *BigramModel) Name() string { return "bigram" }

func (m *BigramModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.History == nil || req.History.Value == "" {
		return nil, nil
	}
	entries, err := m.store.Next(req.History.Value, req.Key, nextLimit)
	if err != nil {
		return nil, err
	}

	results := make([]entity.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             req.History.Key + e.Key,
			Value:           req.History.Value + e.Value,
			Origin:          entity.OriginBigram,
			WordCost:        WordCost(e.Count),
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			Attributes:      entity.AttrUserHistoryPrediction,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "history",
		})
	}
	return results, nil
}

// WordCost turns a commit count into a language model cost.
func WordCost(count int) int {
	if count < 1 {
		count = 1
	}
	return max(0, historyBaseCost-int(costFactor*math.Log(float64(count))))
}
