package ranking

import (
	"sort"
	"strings"

	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const reorderWindow = 10

// Ranker turns the raw aggregated pool into the final candidate list.
// A Ranker holds no per-request state and may be shared.
type Ranker struct {
	connector entity.Connector
	segmenter entity.Segmenter
	filter    entity.SuggestionFilter
	pos       entity.PosMatcher
	converter entity.Converter
}

func NewRanker(
	connector entity.Connector,
	segmenter entity.Segmenter,
	filter entity.SuggestionFilter,
	pos entity.PosMatcher,
	converter entity.Converter,
) *Ranker {
	return &Ranker{
		connector: connector,
		segmenter: segmenter,
		filter:    filter,
		pos:       pos,
		converter: converter,
	}
}

// Process runs cost assignment, the key expansion penalty, spelling correction cleanup and ranking.
// results is modified in place.
func (r *Ranker) Process(req *entity.Request, results []entity.Result) ([]entity.Candidate, bool) {
	if req.MixedConversion {
		r.AssignCostMixed(req, results, NewPenaltyCache())
	} else {
		r.AssignCost(req, results)
	}
	ApplyKeyExpansionPenalty(req, results)
	RemoveMissSpelledCandidates(entity.CharLen(req.Key), results)
	return r.Rank(req, results)
}

// Rank extracts at most req.MaxCandidates candidates in ascending cost order.
// Records with equal cost keep their pool order.
func (r *Ranker) Rank(req *entity.Request, results []entity.Result) ([]entity.Candidate, bool) {
	limit := min(req.MaxCandidates, len(results))
	if limit <= 0 {
		return nil, false
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Cost < results[order[b]].Cost
	})

	state := newFilterState(req, r.filter)
	out := make([]entity.Candidate, 0, limit)
	for _, idx := range order {
		if len(out) >= limit {
			break
		}
		res := &results[idx]
		if res.Cost >= entity.InfinityCost {
			break
		}
		if reason := state.Reject(res, len(out)); reason != "" {
			if req.Debug {
				res.AddLog(true, "rejected: "+reason)
				logger.Debug("drop %s(%s): %s cost=%d", res.Value, res.Key, reason, res.Cost)
			}
			continue
		}
		out = append(out, r.materialize(req, res))
	}

	if req.Tuning.MoveLiteralTypingCorrectionToTop {
		moveNonTypingCorrectionToTop(out)
	}
	return out, len(out) > 0
}

func (r *Ranker) materialize(req *entity.Request, res *entity.Result) entity.Candidate {
	key, value := res.Key, res.Value
	if res.Origin.Has(entity.OriginBigram) {
		key = strings.TrimPrefix(key, req.HistoryKey())
		value = strings.TrimPrefix(value, req.HistoryValue())
	}
	c := entity.Candidate{
		Key:             key,
		Value:           value,
		Cost:            max(1, res.Cost),
		WordCost:        res.WordCost,
		LeftID:          res.LeftID,
		RightID:         res.RightID,
		Attributes:      res.Attributes,
		Origin:          res.Origin,
		SourceInfo:      res.SourceInfo,
		ConsumedKeySize: res.ConsumedKeySize,
	}
	c.Description = r.describe(req, res, key)
	if req.Debug && len(res.Log) > 0 {
		c.Log = append([]string(nil), res.Log...)
	}
	return c
}

func (r *Ranker) describe(req *entity.Request, res *entity.Result, key string) string {
	var parts []string
	if entity.CharLen(key) > entity.CharLen(req.Key) && !res.Origin.Has(entity.OriginSuffix) {
		parts = append(parts, "補完")
	}
	if res.Origin.Has(entity.OriginBigram) {
		parts = append(parts, "履歴")
	}
	if res.Origin.Has(entity.OriginEnglish) {
		parts = append(parts, "英語")
	}
	if res.Attributes.Has(entity.AttrSpellingCorrection) {
		parts = append(parts, "もしかして")
	}
	if res.Origin.Has(entity.OriginTypingCorrection) || res.Attributes.Has(entity.AttrTypingCorrection) {
		parts = append(parts, "タイプミス修正")
	}
	if res.Attributes.Has(entity.AttrUserDictionary) {
		parts = append(parts, "ユーザー辞書")
	}
	if r.pos.IsUniqueNoun(res.LeftID) {
		parts = append(parts, "固有名詞")
	}
	return strings.Join(parts, " ")
}

// moveNonTypingCorrectionToTop promotes the best literal candidate when a typing correction would lead.
func moveNonTypingCorrectionToTop(out []entity.Candidate) {
	if len(out) == 0 || !out[0].IsTypingCorrection() {
		return
	}
	for i := 1; i < len(out) && i < reorderWindow; i++ {
		if out[i].IsTypingCorrection() {
			continue
		}
		c := out[i]
		copy(out[1:i+1], out[:i])
		out[0] = c
		return
	}
}
