package lexicon

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/trknhr/kanarank/internal/utils"
)

// IPA feature columns: four POS levels, then conjugation type and form, base form, reading, pronunciation.
const (
	featConjType = 4
	featConjForm = 5
	featBaseForm = 6
	featReading  = 7
	featMinLen   = 8

	conjBaseForm = "基本形"
	noFeature    = "*"
)

// Lexicon bundles the collaborators derived from one kagome dictionary.
type Lexicon struct {
	Index     *Index
	Pos       *PosTable
	Connector *Connector
	Segmenter *Segmenter
	Converter *Converter

	dict      *dict.Dict
	tokenizer *tokenizer.Tokenizer
}

// Word is a segment of committed text.
type Word struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
}

// Load builds the lexicon from the embedded IPA dictionary.
func Load() (*Lexicon, error) {
	return Build(ipa.Dict())
}

func Build(d *dict.Dict) (*Lexicon, error) {
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	posFeatures := make(map[int][]string)
	baseReadings := make(map[string]string)
	for i, m := range d.Morphs {
		f := morphFeatures(d, i)
		for _, id := range []int{int(m.LeftID), int(m.RightID)} {
			if _, ok := posFeatures[id]; !ok {
				posFeatures[id] = f[:min(len(f), featBaseForm)]
			}
		}
		if len(f) >= featMinLen && f[featConjForm] == conjBaseForm {
			baseReadings[baseKey(f)] = utils.KatakanaToHiragana(f[featReading])
		}
	}

	index := NewIndex()
	for i, m := range d.Morphs {
		e, ok := entryOf(morphFeatures(d, i), baseReadings)
		if !ok {
			continue
		}
		e.LeftID, e.RightID, e.Cost = int(m.LeftID), int(m.RightID), int(m.Weight)
		index.Add(e)
	}

	pos := NewPosTable(posFeatures)
	conn := NewConnector(&d.Connection, int(d.Connection.Row), int(d.Connection.Col))
	return &Lexicon{
		Index:     index,
		Pos:       pos,
		Connector: conn,
		Segmenter: NewSegmenter(pos),
		Converter: NewConverter(index, conn, pos.GeneralNounID()),
		dict:      d,
		tokenizer: t,
	}, nil
}

func morphFeatures(d *dict.Dict, id int) []string {
	var f []string
	if id < len(d.POSTable.POSs) {
		for _, p := range d.POSTable.POSs[id] {
			f = append(f, d.POSTable.NameList[p])
		}
	}
	if id < len(d.Contents) {
		f = append(f, d.Contents[id]...)
	}
	return f
}

func baseKey(f []string) string {
	return f[featBaseForm] + "\x00" + f[featConjType]
}

// entryOf turns the features of one morph into a kana keyed entry.
// Conjugated forms get their surface rebuilt from the base form.
func entryOf(f []string, baseReadings map[string]string) (Entry, bool) {
	if len(f) < featMinLen || f[featReading] == noFeature || f[featBaseForm] == noFeature {
		return Entry{}, false
	}
	reading := utils.KatakanaToHiragana(f[featReading])
	if !utils.IsHiragana(reading) {
		return Entry{}, false
	}

	surface := f[featBaseForm]
	if form := f[featConjForm]; form != noFeature && form != conjBaseForm {
		baseReading, ok := baseReadings[baseKey(f)]
		if !ok {
			return Entry{}, false
		}
		surface, ok = inflectedSurface(f[featBaseForm], baseReading, reading)
		if !ok {
			return Entry{}, false
		}
	}
	return Entry{Key: reading, Value: surface}, true
}

// inflectedSurface strips the kana ending shared by the base form and its reading,
// then appends the rest of the inflected reading to the stem.
// 書く/かく read かい gives 書い.
func inflectedSurface(base, baseReading, reading string) (string, bool) {
	b := []rune(base)
	hb := []rune(utils.KatakanaToHiragana(base))
	br := []rune(baseReading)

	k := 0
	for k < len(hb) && k < len(br) && hb[len(hb)-1-k] == br[len(br)-1-k] {
		k++
	}
	stem := string(b[:len(b)-k])
	stemReading := string(br[:len(br)-k])
	if !strings.HasPrefix(reading, stemReading) {
		return "", false
	}
	surface := stem + strings.TrimPrefix(reading, stemReading)
	if surface == "" {
		return "", false
	}
	return surface, true
}

// Particles returns the particles and auxiliary verbs, the words suggested right after a commit.
func (l *Lexicon) Particles() *Index {
	return l.Index.Filter(func(e Entry) bool {
		return l.Pos.IsParticle(e.LeftID)
	})
}

// Segment splits committed text into words with their readings and context ids.
func (l *Lexicon) Segment(text string) []Word {
	var words []Word
	for _, t := range l.tokenizer.Tokenize(text) {
		if strings.TrimSpace(t.Surface) == "" {
			continue
		}
		w := Word{Key: utils.NormalizeKey(t.Surface), Value: t.Surface}
		if r, ok := t.Reading(); ok && r != noFeature && r != "" {
			w.Key = utils.KatakanaToHiragana(r)
		}

		switch t.Class {
		case tokenizer.KNOWN:
			if t.ID < len(l.dict.Morphs) {
				m := l.dict.Morphs[t.ID]
				w.LeftID, w.RightID = int(m.LeftID), int(m.RightID)
			}
		case tokenizer.UNKNOWN:
			if t.ID < len(l.dict.UnkDict.Morphs) {
				m := l.dict.UnkDict.Morphs[t.ID]
				w.LeftID, w.RightID = int(m.LeftID), int(m.RightID)
			}
		}
		words = append(words, w)
	}
	return words
}
