package lexicon

import "github.com/trknhr/kanarank/internal/model/entity"

// Flat stands in for every lexicon collaborator until the dictionary is loaded.
// All transitions are free and nothing can be converted.
type Flat struct{}

func (Flat) TransitionCost(int, int) int       { return 0 }
func (Flat) SuffixPenalty(int) int             { return 0 }
func (Flat) PrefixPenalty(int) int             { return 0 }
func (Flat) GeneralSymbolID() int              { return -1 }
func (Flat) IsSuffixWord(int) bool             { return false }
func (Flat) IsFunctional(int) bool             { return false }
func (Flat) IsWeakCompoundVerbSuffix(int) bool { return false }
func (Flat) IsUniqueNoun(int) bool             { return false }
func (Flat) ConvertSingleSegment(entity.SingleSegmentRequest) (entity.TopCandidate, bool) {
	return entity.TopCandidate{}, false
}
