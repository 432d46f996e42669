package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trknhr/kanarank/internal/filter"
)

func TestSuggestionFilter(t *testing.T) {
	f := filter.NewSuggestionFilter([]string{"ばか", "  ", "ＡＢＣ"}, 100, 0.001)

	assert.True(t, f.IsBad("ばか"))
	assert.True(t, f.IsBad("ABC"), "width variants are normalized")
	assert.False(t, f.IsBad(""))
	assert.Equal(t, 2, f.Len())

	f.Add("あほ")
	assert.True(t, f.IsBad("あほ"))
}

func TestSuggestionFilter_Defaults(t *testing.T) {
	f := filter.NewSuggestionFilter(nil, 0, 2)
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.IsBad("ばか"))
}
