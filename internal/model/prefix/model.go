package prefix

import (
	"sort"

	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const prefixLimit = 20

// PrefixModel returns words that cover only the head of the input.
// The ranker estimates the cost of converting the rest.
type PrefixModel struct {
	index *lexicon.Index
}

func NewPrefixModel(index *lexicon.Index) entity.Aggregator {
	return &PrefixModel{index: index}
}

func (m *PrefixModel) Name() string { return "prefix" }

func (m *PrefixModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.Key == "" || !(req.Kind.IsPartial() || req.MixedConversion) {
		return nil, nil
	}

	keyLen := entity.CharLen(req.Key)
	var entries []lexicon.Entry
	for _, e := range m.index.CommonPrefixes(req.Key) {
		if entity.CharLen(e.Key) < keyLen {
			entries = append(entries, e)
		}
	}
	// longer prefixes first, then cheaper
	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := entity.CharLen(entries[i].Key), entity.CharLen(entries[j].Key)
		if li != lj {
			return li > lj
		}
		return entries[i].Cost < entries[j].Cost
	})
	if len(entries) > prefixLimit {
		entries = entries[:prefixLimit]
	}

	results := make([]entity.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, entity.Result{
			Key:             e.Key,
			Value:           e.Value,
			Origin:          entity.OriginPrefix,
			WordCost:        e.Cost,
			LeftID:          e.LeftID,
			RightID:         e.RightID,
			Attributes:      entity.AttrPartiallyKeyConsumed,
			ConsumedKeySize: entity.CharLen(e.Key),
			SourceInfo:      "prefix",
		})
	}
	return results, nil
}
