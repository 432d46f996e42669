package number

import (
	"strings"

	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/utils"
	"golang.org/x/text/width"
)

const (
	halfWidthCost = 1000
	fullWidthCost = 1500
	kanjiCost     = 2500
)

var kanjiDigits = []rune("〇一二三四五六七八九")

// NumberModel renders a digit input in half width, full width and kanji digits.
type NumberModel struct {
	posID int
}

func NewNumberModel(posID int) entity.Aggregator {
	return &NumberModel{posID: posID}
}

func (m *NumberModel) Name() string { return "number" }

func (m *NumberModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if !utils.IsDigits(req.Key) {
		return nil, nil
	}
	half := width.Narrow.String(req.Key)

	var kanji strings.Builder
	for _, r := range half {
		kanji.WriteRune(kanjiDigits[r-'0'])
	}

	variants := []struct {
		value string
		cost  int
	}{
		{half, halfWidthCost},
		{width.Widen.String(half), fullWidthCost},
		{kanji.String(), kanjiCost},
	}

	results := make([]entity.Result, 0, len(variants))
	for _, v := range variants {
		results = append(results, entity.Result{
			Key:             req.Key,
			Value:           v.value,
			Origin:          entity.OriginNumber,
			WordCost:        v.cost,
			LeftID:          m.posID,
			RightID:         m.posID,
			Attributes:      entity.AttrNoVariantsExpansion,
			ConsumedKeySize: entity.CharLen(req.Key),
			SourceInfo:      "number",
		})
	}
	return results, nil
}
