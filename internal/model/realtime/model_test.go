package realtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/realtime"
)

func newTestModel(t *testing.T) entity.Aggregator {
	t.Helper()
	ix := lexicon.NewIndex()
	ix.Add(lexicon.Entry{Key: "きょう", Value: "今日", LeftID: 1, RightID: 1, Cost: 3000})
	ix.Add(lexicon.Entry{Key: "は", Value: "は", LeftID: 2, RightID: 2, Cost: 500})
	ix.Add(lexicon.Entry{Key: "きょうは", Value: "今日は", LeftID: 1, RightID: 2, Cost: 9000})
	ix.Add(lexicon.Entry{Key: "きょうは", Value: "京葉", LeftID: 1, RightID: 1, Cost: 6000})

	m, err := realtime.NewRealtimeModel(lexicon.NewConverter(ix, lexicon.Flat{}, 1), ix)
	require.NoError(t, err)
	return m
}

func TestRealtimeModel_Aggregate(t *testing.T) {
	m := newTestModel(t)

	results, err := m.Aggregate(&entity.Request{Key: "きょうは"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	top := results[0]
	assert.Equal(t, "今日は", top.Value)
	assert.True(t, top.Origin.Has(entity.OriginRealtimeTop))
	assert.Equal(t, 3500, top.WordCost)
	assert.Equal(t, []entity.InnerSegment{{KeyLen: 3, ValueLen: 2}, {KeyLen: 1, ValueLen: 1}}, top.InnerSegmentBoundary)

	assert.Equal(t, "京葉", results[1].Value)
	assert.Equal(t, entity.OriginRealtime, results[1].Origin)
	assert.Equal(t, []entity.InnerSegment{{KeyLen: 4, ValueLen: 2}}, results[1].InnerSegmentBoundary)

	again, err := m.Aggregate(&entity.Request{Key: "きょうは"})
	require.NoError(t, err)
	assert.Equal(t, results, again, "cached paths give the same records")
}

func TestRealtimeModel_EmptyKey(t *testing.T) {
	results, err := newTestModel(t).Aggregate(&entity.Request{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
