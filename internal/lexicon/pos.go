package lexicon

const (
	prefixWordSuffixPenalty = 3000
	functionalPrefixPenalty = 2000
)

// PosTable classifies context ids by the part of speech features of the morphs using them.
type PosTable struct {
	features map[int][]string
	symbolID int
	nounID   int
}

func NewPosTable(features map[int][]string) *PosTable {
	p := &PosTable{features: features, symbolID: -1, nounID: -1}
	for id, f := range features {
		if is(f, "記号", "一般") && (p.symbolID < 0 || id < p.symbolID) {
			p.symbolID = id
		}
		if is(f, "名詞", "一般") && (p.nounID < 0 || id < p.nounID) {
			p.nounID = id
		}
	}
	return p
}

// is reports whether f starts with the given features.
func is(f []string, want ...string) bool {
	if len(f) < len(want) {
		return false
	}
	for i, w := range want {
		if f[i] != w {
			return false
		}
	}
	return true
}

func (p *PosTable) Features(id int) []string {
	return p.features[id]
}

func (p *PosTable) GeneralSymbolID() int { return p.symbolID }

// GeneralNounID is used for words the dictionary does not know.
func (p *PosTable) GeneralNounID() int { return max(0, p.nounID) }

func (p *PosTable) IsSuffixWord(id int) bool {
	f := p.features[id]
	return len(f) > 1 && f[1] == "接尾"
}

func (p *PosTable) IsFunctional(id int) bool {
	f := p.features[id]
	return is(f, "助詞") || is(f, "助動詞") || (len(f) > 1 && f[1] == "非自立")
}

func (p *PosTable) IsWeakCompoundVerbSuffix(id int) bool {
	return is(p.features[id], "動詞", "非自立")
}

func (p *PosTable) IsUniqueNoun(id int) bool {
	return is(p.features[id], "名詞", "固有名詞")
}

func (p *PosTable) IsPrefixWord(id int) bool {
	return is(p.features[id], "接頭詞")
}

// IsParticle matches the words suggested right after a committed word.
func (p *PosTable) IsParticle(id int) bool {
	return is(p.features[id], "助詞") || is(p.features[id], "助動詞")
}

// Segmenter penalizes candidates that cannot stand as a whole bunsetsu.
type Segmenter struct {
	pos *PosTable
}

func NewSegmenter(pos *PosTable) *Segmenter {
	return &Segmenter{pos: pos}
}

// SuffixPenalty applies when a candidate ends with a word that needs a continuation.
func (s *Segmenter) SuffixPenalty(rightID int) int {
	if s.pos.IsPrefixWord(rightID) {
		return prefixWordSuffixPenalty
	}
	return 0
}

// PrefixPenalty applies when a candidate starts with a word that cannot open a bunsetsu.
func (s *Segmenter) PrefixPenalty(leftID int) int {
	if s.pos.IsFunctional(leftID) || s.pos.IsSuffixWord(leftID) {
		return functionalPrefixPenalty
	}
	return 0
}
