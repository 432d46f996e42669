package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	katakanaStart = 'ァ'
	katakanaEnd   = 'ヶ'
	kanaOffset    = 'ァ' - 'ぁ'
	prolongedMark = 'ー'
)

// KatakanaToHiragana maps full width katakana to hiragana and leaves everything else untouched.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= katakanaStart && r <= katakanaEnd && r != 'ヵ' && r != 'ヶ' {
			r -= kanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsHiragana reports whether s is non-empty and made only of hiragana and the prolonged sound mark.
func IsHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == prolongedMark {
			continue
		}
		if !unicode.Is(unicode.Hiragana, r) {
			return false
		}
	}
	return true
}

// IsSingleKanji reports whether s is exactly one Han character.
func IsSingleKanji(s string) bool {
	n := 0
	for _, r := range s {
		if !unicode.Is(unicode.Han, r) {
			return false
		}
		n++
	}
	return n == 1
}

// NormalizeKey folds the input the way dictionary keys are stored.
// NFKC widens half width katakana, which is then turned into hiragana.
func NormalizeKey(s string) string {
	return KatakanaToHiragana(norm.NFKC.String(s))
}

// NormalizeValue is used for blocklist membership: NFKC with canonical width.
func NormalizeValue(s string) string {
	return width.Fold.String(norm.NFKC.String(s))
}

// IsDigits reports whether s is a non-empty run of half or full width digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range width.Narrow.String(s) {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
