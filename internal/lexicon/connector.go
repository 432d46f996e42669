package lexicon

// outOfRangeCost is returned for ids the connection matrix does not know.
const outOfRangeCost = 10000

type matrix interface {
	At(row, col int) int16
}

// Connector reads transition costs from the dictionary connection matrix.
type Connector struct {
	m    matrix
	rows int
	cols int
}

func NewConnector(m matrix, rows, cols int) *Connector {
	return &Connector{m: m, rows: rows, cols: cols}
}

// TransitionCost is the cost of placing a word with nextLeftID right after a word with prevRightID.
func (c *Connector) TransitionCost(prevRightID, nextLeftID int) int {
	if prevRightID < 0 || nextLeftID < 0 || prevRightID >= c.rows || nextLeftID >= c.cols {
		return outOfRangeCost
	}
	return int(c.m.At(prevRightID, nextLeftID))
}
