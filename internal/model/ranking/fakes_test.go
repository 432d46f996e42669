package ranking_test

import (
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/ranking"
)

type transition struct{ left, right int }

type fakeConnector map[transition]int

func (c fakeConnector) TransitionCost(leftID, rightID int) int {
	return c[transition{leftID, rightID}]
}

type fakeSegmenter map[int]int

func (s fakeSegmenter) SuffixPenalty(rightID int) int { return s[rightID] }
func (s fakeSegmenter) PrefixPenalty(leftID int) int  { return 0 }

type fakeFilter map[string]bool

func (f fakeFilter) IsBad(value string) bool { return f[value] }

type fakePos struct {
	symbol     int
	functional map[int]bool
	unique     map[int]bool
}

func (p fakePos) GeneralSymbolID() int                 { return p.symbol }
func (p fakePos) IsSuffixWord(id int) bool             { return false }
func (p fakePos) IsFunctional(id int) bool             { return p.functional[id] }
func (p fakePos) IsWeakCompoundVerbSuffix(id int) bool { return false }
func (p fakePos) IsUniqueNoun(id int) bool             { return p.unique[id] }

type noConverter struct{}

func (noConverter) ConvertSingleSegment(entity.SingleSegmentRequest) (entity.TopCandidate, bool) {
	return entity.TopCandidate{}, false
}

func newTestRanker() *ranking.Ranker {
	return ranking.NewRanker(fakeConnector{}, fakeSegmenter{}, fakeFilter{}, fakePos{symbol: 99}, noConverter{})
}

func newRequest(key string) *entity.Request {
	return &entity.Request{
		Key:           key,
		Kind:          entity.KindPrediction,
		MaxCandidates: 10,
		CursorAtTail:  true,
		Tuning:        entity.DefaultTuning(),
	}
}
