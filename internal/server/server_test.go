package server_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/server"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/vmihailenco/msgpack/v5"
)

type fakePredictor struct {
	got []*entity.Request
	err error
	out []entity.Candidate
}

func (p *fakePredictor) Predict(ctx context.Context, req *entity.Request) ([]entity.Candidate, bool, error) {
	p.got = append(p.got, req)
	if p.err != nil {
		return nil, false, p.err
	}
	return p.out, len(p.out) > 0, nil
}

type fakeCommitter struct {
	sentences [][]store.Commit
}

func (c *fakeCommitter) Commit(sentence []store.Commit) error {
	c.sentences = append(c.sentences, sentence)
	return nil
}

func defaultRequest(key string) *entity.Request {
	return &entity.Request{Key: key, Kind: entity.KindSuggestion, MaxCandidates: 10, CursorAtTail: true, Tuning: entity.DefaultTuning()}
}

func roundTrip(t *testing.T, srv func(r io.Reader, w io.Writer) *server.Server, reqs ...server.Request) []server.Response {
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	var out bytes.Buffer
	require.NoError(t, srv(&in, &out).Start(context.Background()))

	var resps []server.Response
	dec := msgpack.NewDecoder(&out)
	for {
		var resp server.Response
		if err := dec.Decode(&resp); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		resps = append(resps, resp)
	}
	return resps
}

func TestServer_Suggest(t *testing.T) {
	p := &fakePredictor{out: []entity.Candidate{
		{Key: "きょう", Value: "今日", Cost: 3000, LeftID: 5, RightID: 5, Description: "補完", Log: []string{"x"}},
	}}
	mixed := true
	resps := roundTrip(t, func(r io.Reader, w io.Writer) *server.Server {
		return server.NewServer(p, nil, defaultRequest, r, w)
	}, server.Request{
		ID: "r1", Key: "きょ", Limit: 3, Kind: "prediction", Mixed: &mixed,
		HistoryKey: "あした", HistoryValue: "明日", HistoryRID: 9, HistoryCost: 3120,
	})

	require.Len(t, resps, 1)
	assert.Equal(t, "r1", resps[0].ID)
	assert.True(t, resps[0].OK)
	assert.Equal(t, 1, resps[0].Count)
	assert.Equal(t, server.Candidate{Key: "きょう", Value: "今日", Cost: 3000, LeftID: 5, RightID: 5, Description: "補完"}, resps[0].Candidates[0])

	require.Len(t, p.got, 1)
	req := p.got[0]
	assert.Equal(t, 3, req.MaxCandidates)
	assert.Equal(t, entity.KindPrediction, req.Kind)
	assert.True(t, req.MixedConversion)
	assert.Equal(t, &entity.History{Key: "あした", Value: "明日", RightID: 9, Cost: 3120}, req.History)
}

func TestServer_SuggestEmptyKeyWithHistory(t *testing.T) {
	p := &fakePredictor{out: []entity.Candidate{{Value: "は", Cost: 500}}}
	resps := roundTrip(t, func(r io.Reader, w io.Writer) *server.Server {
		return server.NewServer(p, nil, defaultRequest, r, w)
	},
		server.Request{ID: "follow", HistoryKey: "きょう", HistoryValue: "今日", HistoryRID: 4},
		server.Request{ID: "bare"},
	)

	require.Len(t, resps, 2)
	assert.True(t, resps[0].OK)
	assert.Equal(t, 1, resps[0].Count)
	assert.False(t, resps[1].OK)
	assert.NotEmpty(t, resps[1].Error)

	require.Len(t, p.got, 1)
	assert.Equal(t, "", p.got[0].Key)
	assert.Equal(t, "今日", p.got[0].HistoryValue())
}

func TestServer_Errors(t *testing.T) {
	p := &fakePredictor{err: errors.New("boom")}
	resps := roundTrip(t, func(r io.Reader, w io.Writer) *server.Server {
		return server.NewServer(p, nil, defaultRequest, r, w)
	},
		server.Request{ID: "a"},
		server.Request{ID: "b", Key: "き", Kind: "conversion"},
		server.Request{ID: "c", Key: "き"},
		server.Request{ID: "d", Action: "commit"},
		server.Request{ID: "e", Action: "reload"},
	)

	require.Len(t, resps, 5)
	for _, r := range resps {
		assert.False(t, r.OK, r.ID)
		assert.NotEmpty(t, r.Error, r.ID)
	}
	assert.Len(t, p.got, 1, "only the valid request reaches the predictor")
}

func TestServer_CommitAndHealth(t *testing.T) {
	c := &fakeCommitter{}
	resps := roundTrip(t, func(r io.Reader, w io.Writer) *server.Server {
		return server.NewServer(&fakePredictor{}, c, defaultRequest, r, w)
	},
		server.Request{Action: "health"},
		server.Request{ID: "c1", Action: "commit", Commits: []server.Word{
			{Key: "きょう", Value: "今日", LeftID: 1, RightID: 2},
			{Key: "", Value: "空"},
		}},
	)

	require.Len(t, resps, 2)
	assert.True(t, resps[0].OK)
	assert.NotEmpty(t, resps[0].ID, "missing ids are generated")
	assert.True(t, resps[1].OK)
	assert.Equal(t, 1, resps[1].Count)
	assert.Equal(t, [][]store.Commit{{{Key: "きょう", Value: "今日", LeftID: 1, RightID: 2}}}, c.sentences)
}
