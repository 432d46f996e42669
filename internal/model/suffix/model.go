package suffix

import (
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const suffixLimit = 30

// SuffixModel suggests particles and auxiliary verbs after a committed word, even for an empty input.
type SuffixModel struct {
	index *lexicon.Index
}

// NewSuffixModel expects an index holding only suffix words, see lexicon.Lexicon.Particles.
func NewSuffixModel(index *lexicon.Index) entity.Aggregator {
	return &SuffixModel{index: index}
}

func (m *SuffixModel) Name() string { return "suffix" }

func (m *SuffixModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.History == nil {
		return nil, nil
	}

	entries := m.index.Predictive(req.Key, suffixLimit)
	results := make([]entity.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginSuffix,
			WordCost:        e.Cost,
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "suffix",
		})
	}
	return results, nil
}
