package filter

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/trknhr/kanarank/internal/utils"
)

const (
	DefaultExpectedItems     = 10000
	DefaultFalsePositiveRate = 0.001
)

// SuggestionFilter flags values that must not be suggested.
// Membership is probabilistic: a false positive only demotes or hides one candidate.
type SuggestionFilter struct {
	mu    sync.RWMutex
	bloom *bloom.BloomFilter
	size  int
}

func NewSuggestionFilter(words []string, expectedItems uint, falsePositiveRate float64) *SuggestionFilter {
	if expectedItems == 0 {
		expectedItems = DefaultExpectedItems
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = DefaultFalsePositiveRate
	}
	f := &SuggestionFilter{bloom: bloom.NewWithEstimates(expectedItems, falsePositiveRate)}
	f.Add(words...)
	return f
}

func (f *SuggestionFilter) Add(words ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		f.bloom.AddString(utils.NormalizeValue(w))
		f.size++
	}
}

func (f *SuggestionFilter) IsBad(value string) bool {
	if value == "" {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bloom.TestString(utils.NormalizeValue(value))
}

func (f *SuggestionFilter) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.size
}
