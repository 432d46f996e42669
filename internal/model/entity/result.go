package entity

import (
	"strings"
	"unicode/utf8"
)

// InfinityCost marks a record that must never be shown.
const InfinityCost = 1 << 21

// BOSContextID is the connection id used when there is no previous word.
const BOSContextID = 0

// Origin tells which aggregator produced a record. One record may carry several tags.
type Origin uint32

const (
	OriginNone    Origin = 0
	OriginUnigram Origin = 1 << iota
	OriginBigram
	OriginRealtime
	OriginRealtimeTop
	OriginSuffix
	OriginEnglish
	OriginTypingCorrection
	OriginExtendedTypingCorrection
	OriginPrefix
	OriginNumber
	OriginSingleKanji
)

var originNames = []struct {
	o    Origin
	name string
}{
	{OriginUnigram, "UNIGRAM"},
	{OriginBigram, "BIGRAM"},
	{OriginRealtime, "REALTIME"},
	{OriginRealtimeTop, "REALTIME_TOP"},
	{OriginSuffix, "SUFFIX"},
	{OriginEnglish, "ENGLISH"},
	{OriginTypingCorrection, "TYPING_CORRECTION"},
	{OriginExtendedTypingCorrection, "EXTENDED_TYPING_CORRECTION"},
	{OriginPrefix, "PREFIX"},
	{OriginNumber, "NUMBER"},
	{OriginSingleKanji, "SINGLE_KANJI"},
}

// Has reports whether every tag in t is set.
func (o Origin) Has(t Origin) bool {
	return t != 0 && o&t == t
}

// Any reports whether at least one tag in t is set.
func (o Origin) Any(t Origin) bool {
	return o&t != 0
}

func (o Origin) Union(t Origin) Origin {
	return o | t
}

func (o Origin) String() string {
	if o == OriginNone {
		return "NONE"
	}
	var names []string
	for _, n := range originNames {
		if o.Has(n.o) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Attribute is the candidate attribute bitset carried through to the output.
type Attribute uint32

const (
	AttrNone               Attribute = 0
	AttrSpellingCorrection Attribute = 1 << iota
	AttrUserDictionary
	AttrPartiallyKeyConsumed
	AttrTypingCorrection
	AttrNoVariantsExpansion
	AttrUserHistoryPrediction
)

func (a Attribute) Has(t Attribute) bool {
	return t != 0 && a&t == t
}

// InnerSegment is one segment of a realtime conversion, lengths in characters.
type InnerSegment struct {
	KeyLen   int
	ValueLen int
}

// Result is a raw candidate record. It lives for one request only.
type Result struct {
	Key    string
	Value  string
	Origin Origin

	// WordCost is the context free language model cost, Cost the final ranking cost.
	WordCost int
	Cost     int

	LeftID  int
	RightID int

	InnerSegmentBoundary []InnerSegment
	Attributes           Attribute
	SourceInfo           string
	ConsumedKeySize      int
	Removed              bool

	NonExpandedOriginalKey string

	Log []string
}

// AddLog appends a debug line; it is a no-op unless debug is enabled.
func (r *Result) AddLog(debug bool, line string) {
	if !debug {
		return
	}
	r.Log = append(r.Log, line)
}

// CharLen returns the number of characters in s.
func CharLen(s string) int {
	return utf8.RuneCountInString(s)
}
