package typing

import (
	"github.com/hbollon/go-edlib"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const (
	minKeyLen        = 2
	maxVariants      = 16
	perVariantLimit  = 5
	editCost         = 500
	extendedDistance = 2
)

// kana that are easily typed for each other
var confusionGroups = [][]rune{
	{'か', 'が'}, {'き', 'ぎ'}, {'く', 'ぐ'}, {'け', 'げ'}, {'こ', 'ご'},
	{'さ', 'ざ'}, {'し', 'じ'}, {'す', 'ず'}, {'せ', 'ぜ'}, {'そ', 'ぞ'},
	{'た', 'だ'}, {'ち', 'ぢ'}, {'つ', 'づ', 'っ'}, {'て', 'で'}, {'と', 'ど'},
	{'は', 'ば', 'ぱ'}, {'ひ', 'び', 'ぴ'}, {'ふ', 'ぶ', 'ぷ'}, {'へ', 'べ', 'ぺ'}, {'ほ', 'ぼ', 'ぽ'},
	{'あ', 'ぁ'}, {'い', 'ぃ'}, {'う', 'ぅ', 'ー'}, {'え', 'ぇ'}, {'お', 'ぉ'},
	{'や', 'ゃ'}, {'ゆ', 'ゅ'}, {'よ', 'ょ'},
}

var confusions = buildConfusions()

func buildConfusions() map[rune][]rune {
	m := make(map[rune][]rune)
	for _, g := range confusionGroups {
		for _, r := range g {
			for _, alt := range g {
				if alt != r {
					m[r] = append(m[r], alt)
				}
			}
		}
	}
	return m
}

// Variants returns corrected spellings of key, single substitutions first.
func Variants(key string, limit int) []string {
	runes := []rune(key)
	seen := map[string]bool{key: true}
	var out []string
	add := func(rs []rune) bool {
		s := string(rs)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
		return len(out) >= limit
	}

	for i, r := range runes {
		for _, alt := range confusions[r] {
			v := append([]rune(nil), runes...)
			v[i] = alt
			if add(v) {
				return out
			}
		}
	}
	for i, r := range runes {
		for j := i + 1; j < len(runes); j++ {
			for _, a := range confusions[r] {
				for _, b := range confusions[runes[j]] {
					v := append([]rune(nil), runes...)
					v[i], v[j] = a, b
					if add(v) {
						return out
					}
				}
			}
		}
	}
	return out
}

// TypingModel looks up corrected spellings of the input.
type TypingModel struct {
	index *lexicon.Index
}

func NewTypingModel(index *lexicon.Index) entity.Aggregator {
	return &TypingModel{index: index}
}

func (m *TypingModel) Name() string { return "typing" }

func (m *TypingModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if entity.CharLen(req.Key) < minKeyLen {
		return nil, nil
	}

	var results []entity.Result
	seen := make(map[string]bool)
	for _, variant := range Variants(req.Key, maxVariants) {
		distance := edlib.LevenshteinDistance(req.Key, variant)
		origin := entity.OriginTypingCorrection
		if distance >= extendedDistance {
			origin |= entity.OriginExtendedTypingCorrection
		}

		for _, e := range m.index.Predictive(variant, perVariantLimit) {
			id := e.Key + "\x00" + e.Value
			if seen[id] {
				continue
			}
			seen[id] = true
			results = append(results, entity.Result{
				Key:                    e.Key,
				Value:                  e.Value,
				Origin:                 origin,
				WordCost:               e.Cost + distance*editCost,
				LeftID:                 e.LeftID,
				RightID:                e.RightID,
				Attributes:             entity.AttrTypingCorrection,
				ConsumedKeySize:        entity.CharLen(req.Key),
				NonExpandedOriginalKey: req.Key,
				SourceInfo:             "typing_correction",
			})
		}
	}
	return results, nil
}
