package lexicon

import (
	"strings"

	"github.com/trknhr/kanarank/internal/model/entity"
)

const unknownWordCost = 10000

// Segment is one word of a conversion path.
type Segment struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
	Cost    int
	Known   bool
}

// Path is the cheapest segmentation of a key.
type Path struct {
	Segments []Segment
	// Cost includes the transitions from BOS and into EOS, WordCost does not.
	Cost     int
	WordCost int
}

func (p Path) Value() string {
	var b strings.Builder
	for _, s := range p.Segments {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Known reports whether every segment came from the dictionary.
func (p Path) Known() bool {
	for _, s := range p.Segments {
		if !s.Known {
			return false
		}
	}
	return len(p.Segments) > 0
}

// Converter finds the best path through the reading index with the Viterbi algorithm.
type Converter struct {
	index     *Index
	conn      entity.Connector
	unknownID int
}

func NewConverter(index *Index, conn entity.Connector, unknownID int) *Converter {
	return &Converter{index: index, conn: conn, unknownID: unknownID}
}

type latticeNode struct {
	seg  Segment
	cost int
	prev *latticeNode
}

// BestPath converts key. Characters without a dictionary word become one character unknown segments.
func (c *Converter) BestPath(key string) (Path, bool) {
	runes := []rune(key)
	n := len(runes)
	if n == 0 {
		return Path{}, false
	}

	ends := make([][]*latticeNode, n+1)
	ends[0] = []*latticeNode{{seg: Segment{RightID: entity.BOSContextID}}}

	for i := 0; i < n; i++ {
		if len(ends[i]) == 0 {
			continue
		}
		for _, s := range c.segmentsAt(runes, i) {
			var best *latticeNode
			bestCost := 0
			for _, p := range ends[i] {
				cost := p.cost + c.conn.TransitionCost(p.seg.RightID, s.LeftID) + s.Cost
				if best == nil || cost < bestCost {
					best, bestCost = p, cost
				}
			}
			j := i + entity.CharLen(s.Key)
			ends[j] = append(ends[j], &latticeNode{seg: s, cost: bestCost, prev: best})
		}
	}

	var last *latticeNode
	total := 0
	for _, p := range ends[n] {
		cost := p.cost + c.conn.TransitionCost(p.seg.RightID, entity.BOSContextID)
		if last == nil || cost < total {
			last, total = p, cost
		}
	}
	if last == nil {
		return Path{}, false
	}

	var segs []Segment
	for node := last; node.prev != nil; node = node.prev {
		segs = append(segs, node.seg)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}

	first, tail := segs[0], segs[len(segs)-1]
	return Path{
		Segments: segs,
		Cost:     total,
		WordCost: total - c.conn.TransitionCost(entity.BOSContextID, first.LeftID) - c.conn.TransitionCost(tail.RightID, entity.BOSContextID),
	}, true
}

func (c *Converter) segmentsAt(runes []rune, i int) []Segment {
	entries := c.index.CommonPrefixes(string(runes[i:]))
	segs := make([]Segment, 0, len(entries)+1)
	single := false
	for _, e := range entries {
		if entity.CharLen(e.Key) == 1 {
			single = true
		}
		segs = append(segs, Segment{Key: e.Key, Value: e.Value, LeftID: e.LeftID, RightID: e.RightID, Cost: e.Cost, Known: true})
	}
	if !single {
		ch := string(runes[i])
		segs = append(segs, Segment{Key: ch, Value: ch, LeftID: c.unknownID, RightID: c.unknownID, Cost: unknownWordCost})
	}
	return segs
}

// ConvertSingleSegment returns the best conversion of the whole key as one segment.
// It fails when part of the key is not in the dictionary.
func (c *Converter) ConvertSingleSegment(req entity.SingleSegmentRequest) (entity.TopCandidate, bool) {
	path, ok := c.BestPath(req.Key)
	if !ok || !path.Known() {
		return entity.TopCandidate{}, false
	}
	return entity.TopCandidate{
		Key:     req.Key,
		Value:   path.Value(),
		LeftID:  path.Segments[0].LeftID,
		RightID: path.Segments[len(path.Segments)-1].RightID,
		Cost:    path.WordCost,
	}, true
}
