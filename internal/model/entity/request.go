package entity

import (
	"fmt"
	"strings"
)

type RequestKind int

const (
	KindSuggestion RequestKind = iota
	KindPrediction
	KindPartialSuggestion
	KindPartialPrediction
)

func (k RequestKind) String() string {
	switch k {
	case KindSuggestion:
		return "suggestion"
	case KindPrediction:
		return "prediction"
	case KindPartialSuggestion:
		return "partial_suggestion"
	case KindPartialPrediction:
		return "partial_prediction"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseRequestKind(s string) (RequestKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "suggestion":
		return KindSuggestion, nil
	case "prediction":
		return KindPrediction, nil
	case "partial_suggestion":
		return KindPartialSuggestion, nil
	case "partial_prediction":
		return KindPartialPrediction, nil
	}
	return KindSuggestion, fmt.Errorf("unknown request kind %q", s)
}

func (k RequestKind) IsSuggestion() bool {
	return k == KindSuggestion || k == KindPartialSuggestion
}

func (k RequestKind) IsPartial() bool {
	return k == KindPartialSuggestion || k == KindPartialPrediction
}

// History is the word the user committed right before the current input.
type History struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
	Cost    int
}

// Tuning holds the empirically tuned knobs of the ranking.
type Tuning struct {
	SingleKanjiCostOffset            int
	TypingCorrectionCostOffset       int
	TypingCorrectionMaxCount         int
	TypingCorrectionMaxRank          int
	CancelContentWordSuffixPenalty   bool
	MoveLiteralTypingCorrectionToTop bool
}

func DefaultTuning() Tuning {
	return Tuning{
		TypingCorrectionCostOffset: 3000,
		TypingCorrectionMaxCount:   3,
		TypingCorrectionMaxRank:    10,
	}
}

type Request struct {
	Key             string
	Kind            RequestKind
	MaxCandidates   int
	MixedConversion bool
	CursorAtTail    bool

	// History is nil when nothing was committed before the input.
	History *History

	Tuning Tuning
	Debug  bool
}

// ContextID is the right id of the previous word, or BOS.
func (r *Request) ContextID() int {
	if r.History == nil {
		return BOSContextID
	}
	return r.History.RightID
}

func (r *Request) HistoryKey() string {
	if r.History == nil {
		return ""
	}
	return r.History.Key
}

func (r *Request) HistoryValue() string {
	if r.History == nil {
		return ""
	}
	return r.History.Value
}

func (r *Request) HistoryCost() int {
	if r.History == nil {
		return 0
	}
	return r.History.Cost
}
