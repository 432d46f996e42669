package entity

//go:generate mockgen -source=collaborator.go -destination=mock_collaborator.go -package=entity

// Connector returns the bigram transition cost between a right id and the next left id.
type Connector interface {
	TransitionCost(leftID, rightID int) int
}

// Segmenter returns bunsetsu boundary penalties.
type Segmenter interface {
	SuffixPenalty(rightID int) int
	PrefixPenalty(leftID int) int
}

type SuggestionFilter interface {
	IsBad(value string) bool
}

type PosMatcher interface {
	GeneralSymbolID() int
	IsSuffixWord(id int) bool
	IsFunctional(id int) bool
	IsWeakCompoundVerbSuffix(id int) bool
	IsUniqueNoun(id int) bool
}

// SingleSegmentRequest asks for the conversion of exactly one segment.
type SingleSegmentRequest struct {
	Key string
}

// TopCandidate is the single best conversion of a SingleSegmentRequest.
type TopCandidate struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
	Cost    int
}

// Converter converts one segment and returns at most one candidate.
// Implementations must not recurse into the prediction pipeline.
type Converter interface {
	ConvertSingleSegment(req SingleSegmentRequest) (TopCandidate, bool)
}

// Aggregator produces raw candidate records for a request.
type Aggregator interface {
	Name() string
	Aggregate(req *Request) ([]Result, error)
}
