package realtime

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
)

const (
	cacheSize  = 256
	exactLimit = 10
)

type pathResult struct {
	path lexicon.Path
	ok   bool
}

// RealtimeModel converts the whole input. The best path is tagged REALTIME_TOP,
// single words reading exactly the input are plain REALTIME.
type RealtimeModel struct {
	converter *lexicon.Converter
	index     *lexicon.Index
	cache     *lru.Cache[string, pathResult]
}

func NewRealtimeModel(converter *lexicon.Converter, index *lexicon.Index) (entity.Aggregator, error) {
	cache, err := lru.New[string, pathResult](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RealtimeModel{converter: converter, index: index, cache: cache}, nil
}

func (m *RealtimeModel) Name() string { return "realtime" }

func (m *RealtimeModel) bestPath(key string) (lexicon.Path, bool) {
	if r, ok := m.cache.Get(key); ok {
		return r.path, r.ok
	}
	path, ok := m.converter.BestPath(key)
	m.cache.Add(key, pathResult{path: path, ok: ok})
	return path, ok
}

func (m *RealtimeModel) Aggregate(req *entity.Request) ([]entity.Result, error) {
	if req.Key == "" {
		return nil, nil
	}
	keyLen := entity.CharLen(req.Key)

	var results []entity.Result
	seen := make(map[string]bool)
	if path, ok := m.bestPath(req.Key); ok {
		top := entity.Result{
			Key:             req.Key,
			Value:           path.Value(),
			Origin:          entity.OriginRealtime | entity.OriginRealtimeTop,
			WordCost:        path.WordCost,
			LeftID:          path.Segments[0].LeftID,
			RightID:         path.Segments[len(path.Segments)-1].RightID,
			ConsumedKeySize: keyLen,
			SourceInfo:      "realtime_top",
		}
		for _, s := range path.Segments {
			top.InnerSegmentBoundary = append(top.InnerSegmentBoundary, entity.InnerSegment{
				KeyLen:   entity.CharLen(s.Key),
				ValueLen: entity.CharLen(s.Value),
			})
		}
		results = append(results, top)
		seen[top.Value] = true
	}

	for _, e := range m.index.Lookup(req.Key) {
		if seen[e.Value] {
			continue
		}
		seen[e.Value] = true
		results = append(results, entity.Result{
			Key:                  req.Key,
			Value:                e.Value,
			Origin:               entity.OriginRealtime,
			WordCost:             e.Cost,
			LeftID:               e.LeftID,
			RightID:              e.RightID,
			InnerSegmentBoundary: []entity.InnerSegment{{KeyLen: keyLen, ValueLen: entity.CharLen(e.Value)}},
			ConsumedKeySize:      keyLen,
			SourceInfo:           "realtime",
		})
		if len(results) > exactLimit {
			break
		}
	}
	return results, nil
}
