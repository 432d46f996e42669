package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/trknhr/kanarank/internal/model/entity"
)

const (
	prefixCandidateCostOffset = 1151 // 500 * ln(10)
	keyExpansionPenalty       = 1151
)

type penaltyKey struct {
	rightID int
	keyLen  int
}

// PenaltyCache memoizes prefix penalties for one ranking call.
type PenaltyCache map[penaltyKey]int

func NewPenaltyCache() PenaltyCache {
	return make(PenaltyCache)
}

// PrefixPenalty estimates the cost of converting the part of the input that res did not consume.
// It is 0 when res consumed the whole input. A key longer than the input leaves nothing to
// convert, so the penalty is InfinityCost plus the prefix offset and the record never ranks.
func (r *Ranker) PrefixPenalty(inputKey string, res *entity.Result, cache PenaltyCache) int {
	if inputKey == res.Key {
		return 0
	}
	keyLen := entity.CharLen(res.Key)
	ck := penaltyKey{rightID: res.RightID, keyLen: keyLen}
	if p, ok := cache[ck]; ok {
		return p
	}

	penalty := entity.InfinityCost
	rest := substringFrom(inputKey, keyLen)
	if rest != "" {
		top, ok := r.converter.ConvertSingleSegment(entity.SingleSegmentRequest{Key: rest})
		if ok && top.Cost > 0 {
			penalty = r.connector.TransitionCost(res.RightID, top.LeftID) + top.Cost
		}
	}
	penalty += prefixCandidateCostOffset
	cache[ck] = penalty
	return penalty
}

// SingleKanjiOffset lifts single kanji above the costliest single character word in the pool.
func (r *Ranker) SingleKanjiOffset(req *entity.Request, results []entity.Result, cache PenaltyCache) int {
	rid := req.ContextID()
	minByValue := make(map[string]int)
	fallback, hasFallback := 0, false

	for i := range results {
		res := &results[i]
		if res.Removed || !res.Origin.Any(entity.OriginRealtime|entity.OriginUnigram|entity.OriginPrefix|entity.OriginNumber) {
			continue
		}
		cost := r.LmCost(res, rid)
		if res.Attributes.Has(entity.AttrPartiallyKeyConsumed) {
			cost += r.PrefixPenalty(req.Key, res, cache)
		}
		if res.Value == req.Key && (!hasFallback || cost < fallback) {
			fallback, hasFallback = cost, true
		}
		if res.Origin.Any(entity.OriginRealtime|entity.OriginUnigram) && entity.CharLen(res.Value) != 1 {
			continue
		}
		if c, ok := minByValue[res.Value]; !ok || cost < c {
			minByValue[res.Value] = cost
		}
	}

	maxCost := 0
	switch {
	case len(minByValue) > 0:
		first := true
		for _, c := range minByValue {
			if first || c > maxCost {
				maxCost, first = c, false
			}
		}
	case hasFallback:
		maxCost = fallback
	}

	symbol := r.pos.GeneralSymbolID()
	transition := min(r.connector.TransitionCost(rid, symbol), r.connector.TransitionCost(entity.BOSContextID, symbol))
	return max(0, maxCost-transition) + req.Tuning.SingleKanjiCostOffset
}

// ApplyKeyExpansionPenalty demotes records that were only reachable through an expanded key.
func ApplyKeyExpansionPenalty(req *entity.Request, results []entity.Result) {
	if req.Key == "" {
		return
	}
	historyKey := req.HistoryKey()
	for i := range results {
		res := &results[i]
		if res.Origin.Any(entity.OriginTypingCorrection|entity.OriginEnglish) ||
			res.Attributes.Has(entity.AttrPartiallyKeyConsumed) {
			continue
		}
		key := res.Key
		if res.Origin.Has(entity.OriginBigram) {
			key = strings.TrimPrefix(key, historyKey)
		}
		if !strings.HasPrefix(key, req.Key) {
			res.Cost += keyExpansionPenalty
			res.AddLog(req.Debug, "key expansion")
		}
	}
}

// substringFrom drops the first n characters of s.
func substringFrom(s string, n int) string {
	for i := 0; i < n && s != ""; i++ {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}
