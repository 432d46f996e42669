package ranking

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const (
	maxSuffixCount = 20

	maxPredictiveCount     = 3
	predictiveRankLimit    = 10
	maxRealtimeCount       = 3
	realtimeRankLimit      = 5
	maxPrefixTCCount       = 3
	prefixTCRankLimit      = 10
	maxTypingCorrectionKey = 3
)

// FilterState accumulates what has already been emitted during one ranking call.
type FilterState struct {
	inputKey       string
	inputLen       int
	bigramLiteral  string
	historyKey     string
	historyValue   string
	mixed          bool
	tuning         entity.Tuning
	filter         entity.SuggestionFilter
	seenValues     mapset.Set[string]
	typingKeyCount map[string]int

	suffixCount       int
	predictiveCount   int
	realtimeCount     int
	typingCount       int
	prefixTypingCount int
}

func newFilterState(req *entity.Request, filter entity.SuggestionFilter) *FilterState {
	return &FilterState{
		inputKey:       req.Key,
		inputLen:       entity.CharLen(req.Key),
		bigramLiteral:  req.HistoryValue() + req.Key,
		historyKey:     req.HistoryKey(),
		historyValue:   req.HistoryValue(),
		mixed:          req.MixedConversion,
		tuning:         req.Tuning,
		filter:         filter,
		seenValues:     mapset.NewThreadUnsafeSet[string](),
		typingKeyCount: make(map[string]int),
	}
}

// Reject returns a non-empty reason when res must not be emitted.
// emitted is the number of candidates accepted so far.
func (s *FilterState) Reject(res *entity.Result, emitted int) string {
	if res.Removed {
		return "removed"
	}
	if res.Cost >= entity.InfinityCost {
		return "infinity cost"
	}

	exactKey := s.mixed && res.Key == s.inputKey
	if !exactKey && s.filter.IsBad(res.Value) {
		return "bad suggestion"
	}
	if !exactKey && !res.Origin.Has(entity.OriginRealtime) {
		literal := s.inputKey
		if res.Origin.Has(entity.OriginBigram) {
			literal = s.bigramLiteral
		}
		if res.Value == literal {
			return "same as input"
		}
	}

	isTyping := res.Origin.Has(entity.OriginTypingCorrection) && !res.Origin.Has(entity.OriginExtendedTypingCorrection)
	if isTyping && s.typingKeyCount[typingSourceKey(res)] >= maxTypingCorrectionKey {
		return "typing correction key limit"
	}

	if res.Attributes.Has(entity.AttrSpellingCorrection) &&
		s.inputLen <= GetMissSpelledPosition(res.Key, res.Value)+1 {
		return "spelling correction"
	}

	if res.Origin.Has(entity.OriginSuffix) {
		n := s.suffixCount
		s.suffixCount++
		if n >= maxSuffixCount {
			return "suffix limit"
		}
	}

	if s.mixed {
		if reason := s.rejectMixed(res, emitted); reason != "" {
			return reason
		}
	}

	value := res.Value
	if res.Origin.Has(entity.OriginBigram) {
		value = strings.TrimPrefix(value, s.historyValue)
	}
	if s.seenValues.Contains(value) {
		return "duplicate"
	}
	s.seenValues.Add(value)
	if isTyping {
		s.typingKeyCount[typingSourceKey(res)]++
	}
	return ""
}

func (s *FilterState) rejectMixed(res *entity.Result, emitted int) string {
	key := res.Key
	if res.Origin.Has(entity.OriginBigram) {
		key = strings.TrimPrefix(key, s.historyKey)
	}
	if entity.CharLen(key) > s.inputLen && quotaExceeded(&s.predictiveCount, maxPredictiveCount, emitted, predictiveRankLimit) {
		return "predictive limit"
	}

	if res.Origin.Has(entity.OriginRealtime) &&
		len(res.InnerSegmentBoundary) != 1 && entity.CharLen(res.Value) != 1 &&
		quotaExceeded(&s.realtimeCount, maxRealtimeCount, emitted, realtimeRankLimit) {
		return "realtime limit"
	}

	if res.Origin.Has(entity.OriginTypingCorrection) &&
		quotaExceeded(&s.typingCount, s.tuning.TypingCorrectionMaxCount, emitted, s.tuning.TypingCorrectionMaxRank) {
		return "typing correction limit"
	}

	if res.Origin.Has(entity.OriginPrefix) && res.Attributes.Has(entity.AttrTypingCorrection) &&
		quotaExceeded(&s.prefixTypingCount, maxPrefixTCCount, emitted, prefixTCRankLimit) {
		return "prefix typing correction limit"
	}
	return ""
}

// typingSourceKey is the key the user typed before correction.
func typingSourceKey(res *entity.Result) string {
	if res.NonExpandedOriginalKey != "" {
		return res.NonExpandedOriginalKey
	}
	return res.Key
}

// quotaExceeded counts the evaluation and reports whether the quota was already used up.
func quotaExceeded(counter *int, limit, emitted, rankLimit int) bool {
	n := *counter
	*counter++
	return n >= limit && emitted >= rankLimit
}
