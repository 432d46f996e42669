package ranking

import (
	"fmt"
	"math"

	"github.com/trknhr/kanarank/internal/model/entity"
)

const (
	// 500 * ln(prob) is the unit of every cost below.
	costFactor = 500

	badSuggestionPenalty = 3453 // 500 * ln(1000)

	defaultTransitionCost = 1347
	bigramBonus           = 800 // ~ 500 * ln(5)

	userDictionaryPromotion = 804 // 500 * ln(5)
	userDictionaryCostLimit = 1000

	notExactFactor = 50

	realtimeTopOffset = 10

	aggressiveMinPoolSize = 10
	aggressiveMinKeyLen   = 8
	aggressiveMinCost     = 5000
	aggressiveQueryRatio  = 0.4
)

// LmCost is the context aware language model cost of one record.
func (r *Ranker) LmCost(res *entity.Result, contextRightID int) int {
	withContext := r.connector.TransitionCost(contextRightID, res.LeftID)
	var cost int
	if res.Origin.Has(entity.OriginSuffix) {
		// suffixes must agree with the grammatical context
		cost = withContext + res.WordCost
	} else {
		withoutContext := r.connector.TransitionCost(entity.BOSContextID, res.LeftID)
		cost = min(withContext, withoutContext) + res.WordCost
	}
	if !res.Origin.Has(entity.OriginRealtime) {
		cost += r.segmenter.SuffixPenalty(res.RightID)
	}
	return cost
}

// IsAggressive reports whether a long sentence-like completion was triggered by a very short query.
func IsAggressive(queryLen, keyLen, cost int, isSuggestion bool, poolSize int) bool {
	return isSuggestion &&
		poolSize >= aggressiveMinPoolSize &&
		keyLen >= aggressiveMinKeyLen &&
		cost >= aggressiveMinCost &&
		queryLen <= int(math.Floor(aggressiveQueryRatio*float64(keyLen)))
}

// AssignCost is the desktop cost model.
func (r *Ranker) AssignCost(req *entity.Request, results []entity.Result) {
	rid := req.ContextID()
	unigramKeyLen := entity.CharLen(req.Key)
	bigramKeyLen := entity.CharLen(req.HistoryKey() + req.Key)
	isSuggestion := req.Kind.IsSuggestion()
	poolSize := len(results)

	realtimeMin := entity.InfinityCost
	realtimeTop := -1

	for i := range results {
		res := &results[i]
		lm := r.LmCost(res, rid)
		queryLen := unigramKeyLen
		if res.Origin.Has(entity.OriginBigram) {
			queryLen = bigramKeyLen
		}
		keyLen := entity.CharLen(res.Key)

		if IsAggressive(queryLen, keyLen, lm, isSuggestion, poolSize) {
			res.Cost = entity.InfinityCost
			res.AddLog(req.Debug, "aggressive suggestion")
			continue
		}

		// reward the number of characters the user does not have to type
		saved := max(0, keyLen-queryLen)
		res.Cost = lm - int(costFactor*math.Log(1+float64(saved)))
		res.AddLog(req.Debug, fmt.Sprintf("lm=%d cost=%d", lm, res.Cost))

		if res.Origin.Has(entity.OriginRealtime) && keyLen == unigramKeyLen && res.Cost < realtimeMin {
			realtimeMin = res.Cost
		}
		if res.Origin.Has(entity.OriginRealtimeTop) {
			realtimeTop = i
		}
	}

	if realtimeTop >= 0 {
		results[realtimeTop].Cost = max(0, realtimeMin-realtimeTopOffset)
		results[realtimeTop].AddLog(req.Debug, fmt.Sprintf("realtime top=%d", results[realtimeTop].Cost))
	}
}

// AssignCostMixed is the cost model used when prediction and conversion are blended.
func (r *Ranker) AssignCostMixed(req *entity.Request, results []entity.Result, cache PenaltyCache) {
	rid := req.ContextID()
	inputKeyLen := entity.CharLen(req.Key)
	bigramKeyLen := entity.CharLen(req.HistoryKey() + req.Key)
	historyCost := req.HistoryCost()
	tuning := req.Tuning
	generalSymbol := r.pos.GeneralSymbolID()

	singleKanjiOffset := r.SingleKanjiOffset(req, results, cache)

	for i := range results {
		res := &results[i]
		cost := r.LmCost(res, rid)
		res.AddLog(req.Debug, fmt.Sprintf("lm=%d", cost))

		if tuning.CancelContentWordSuffixPenalty && r.isContentWord(res) {
			cost -= r.segmenter.SuffixPenalty(res.RightID)
			res.AddLog(req.Debug, fmt.Sprintf("cancel suffix penalty=%d", cost))
		}

		// bad words are not filtered for exact matches, so demote them here
		if r.filter.IsBad(res.Value) {
			cost += badSuggestionPenalty
			res.AddLog(req.Debug, fmt.Sprintf("bad suggestion=%d", cost))
		}

		if res.Origin.Has(entity.OriginTypingCorrection) && !res.Origin.Has(entity.OriginExtendedTypingCorrection) {
			cost += tuning.TypingCorrectionCostOffset
			res.AddLog(req.Debug, fmt.Sprintf("typing correction=%d", cost))
		}

		if res.Origin.Has(entity.OriginBigram) {
			// the real transition from the committed word is unknown
			cost += defaultTransitionCost - bigramBonus - historyCost
			cost = max(1, cost)
			res.AddLog(req.Debug, fmt.Sprintf("bigram=%d", cost))
		}

		if res.Origin.Has(entity.OriginSingleKanji) {
			cost += singleKanjiOffset
			if cost <= 0 {
				cost = res.WordCost + 1
			}
			res.AddLog(req.Debug, fmt.Sprintf("single kanji=%d", cost))
		}

		if res.Attributes.Has(entity.AttrUserDictionary) && res.RightID != generalSymbol {
			cost = min(cost-userDictionaryPromotion, userDictionaryCostLimit)
			res.AddLog(req.Debug, fmt.Sprintf("user dictionary=%d", cost))
		}

		if !res.Origin.Has(entity.OriginSuffix) {
			queryLen := inputKeyLen
			if res.Origin.Has(entity.OriginBigram) {
				queryLen = bigramKeyLen
			}
			if extra := entity.CharLen(res.Key) - queryLen; extra > 0 {
				cost += int(costFactor * math.Log(float64(notExactFactor*extra)))
				res.AddLog(req.Debug, fmt.Sprintf("not exact=%d", cost))
			}
		}

		if res.Attributes.Has(entity.AttrPartiallyKeyConsumed) {
			cost += r.PrefixPenalty(req.Key, res, cache)
			res.AddLog(req.Debug, fmt.Sprintf("prefix penalty=%d", cost))
		}

		res.Cost = max(1, cost)
	}
}

// isContentWord reports whether the suffix penalty folded into LmCost can be cancelled.
func (r *Ranker) isContentWord(res *entity.Result) bool {
	if res.Origin.Any(entity.OriginSuffix | entity.OriginRealtime) {
		return false
	}
	rid := res.RightID
	return !r.pos.IsSuffixWord(rid) && !r.pos.IsFunctional(rid) && !r.pos.IsWeakCompoundVerbSuffix(rid)
}
