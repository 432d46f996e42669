package ranking

import (
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/utils"
)

const maxSpellingCorrections = 5

// GetMissSpelledPosition returns the character index where key and the reading of value diverge.
func GetMissSpelledPosition(key, value string) int {
	reading := utils.KatakanaToHiragana(value)
	keyLen := entity.CharLen(key)
	if reading != "" && !utils.IsHiragana(reading) {
		return keyLen
	}

	readingRunes := []rune(reading)
	pos := 0
	for _, k := range key {
		if pos >= len(readingRunes) || readingRunes[pos] != k {
			return pos
		}
		pos++
	}
	return pos
}

// RemoveMissSpelledCandidates soft deletes spelling corrections shadowed by ordinary entries.
func RemoveMissSpelledCandidates(requestKeyLen int, results []entity.Result) {
	if len(results) <= 1 {
		return
	}

	seen := 0
	for i := range results {
		if !results[i].Attributes.Has(entity.AttrSpellingCorrection) {
			continue
		}
		seen++
		if seen > maxSpellingCorrections {
			return
		}

		target := &results[i]
		var sameKey, sameValue []int
		for j := range results {
			if j == i || results[j].Attributes.Has(entity.AttrSpellingCorrection) {
				continue
			}
			if results[j].Key == target.Key {
				sameKey = append(sameKey, j)
			}
			if results[j].Value == target.Value {
				sameValue = append(sameValue, j)
			}
		}

		switch {
		case len(sameKey) > 0 && len(sameValue) > 0:
			target.Removed = true
			for _, j := range sameKey {
				results[j].Removed = true
			}
		case len(sameKey) == 0 && len(sameValue) > 0:
			target.Removed = true
		case len(sameKey) > 0 && len(sameValue) == 0:
			for _, j := range sameKey {
				results[j].Removed = true
			}
			if requestKeyLen <= GetMissSpelledPosition(target.Key, target.Value)+1 {
				target.Removed = true
			}
		}
	}
}
