package entity

// Candidate is one entry of the ranked output list.
type Candidate struct {
	Key             string
	Value           string
	Cost            int
	WordCost        int
	LeftID          int
	RightID         int
	Attributes      Attribute
	Origin          Origin
	SourceInfo      string
	ConsumedKeySize int
	Description     string
	Log             []string
}

func (c Candidate) IsTypingCorrection() bool {
	return c.Origin.Has(OriginTypingCorrection) || c.Attributes.Has(AttrTypingCorrection)
}
