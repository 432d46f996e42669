package ranking_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/ranking"
)

func TestGetMissSpelledPosition(t *testing.T) {
	tests := []struct {
		key, value string
		want       int
	}{
		{"", "", 0},
		{"れみおめろん", "レミオロメン", 3},
		{"ばっく", "バック", 3},
		{"ばっく", "バッグ", 2},
		{"ばっく", "バッ", 2},
		{"こんぴゅーた", "コンピューター", 6},
		{"かんじ", "漢字", 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.key, tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, ranking.GetMissSpelledPosition(tt.key, tt.value))
		})
	}
}

func removedFlags(results []entity.Result) []bool {
	flags := make([]bool, len(results))
	for i := range results {
		flags[i] = results[i].Removed
	}
	return flags
}

func TestRemoveMissSpelledCandidates(t *testing.T) {
	tests := []struct {
		name          string
		requestKeyLen int
		results       []entity.Result
		want          []bool
	}{
		{
			name:          "same key and same value",
			requestKeyLen: 1,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
				{Key: "ばっぐ", Value: "バッグ"},
				{Key: "ばっく", Value: "バック"},
			},
			want: []bool{true, false, true},
		},
		{
			name:          "same value only",
			requestKeyLen: 1,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
				{Key: "ばっぐ", Value: "バッグ"},
			},
			want: []bool{true, false},
		},
		{
			name:          "same key only, short input",
			requestKeyLen: 3,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
				{Key: "ばっく", Value: "バック"},
			},
			want: []bool{true, true},
		},
		{
			name:          "same key only, input past the mismatch",
			requestKeyLen: 4,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
				{Key: "ばっく", Value: "バック"},
			},
			want: []bool{false, true},
		},
		{
			name:          "no siblings",
			requestKeyLen: 1,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
				{Key: "かばん", Value: "鞄"},
			},
			want: []bool{false, false},
		},
		{
			name:          "single record",
			requestKeyLen: 1,
			results: []entity.Result{
				{Key: "ばっく", Value: "バッグ", Attributes: entity.AttrSpellingCorrection},
			},
			want: []bool{false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranking.RemoveMissSpelledCandidates(tt.requestKeyLen, tt.results)
			assert.Equal(t, tt.want, removedFlags(tt.results))
		})
	}
}

func TestRemoveMissSpelledCandidates_StopsAfterFive(t *testing.T) {
	var results []entity.Result
	for i := 0; i < 6; i++ {
		value := fmt.Sprintf("v%d", i)
		results = append(results,
			entity.Result{Key: fmt.Sprintf("k%d", i), Value: value, Attributes: entity.AttrSpellingCorrection},
			entity.Result{Key: fmt.Sprintf("x%d", i), Value: value},
		)
	}

	ranking.RemoveMissSpelledCandidates(1, results)

	for i := 0; i < 5; i++ {
		assert.True(t, results[2*i].Removed, "correction %d", i)
	}
	assert.False(t, results[10].Removed, "sixth correction is not examined")
}
