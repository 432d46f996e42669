package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/vmihailenco/msgpack/v5"
)

const maxKeyLength = 60

type Predictor interface {
	Predict(ctx context.Context, req *entity.Request) ([]entity.Candidate, bool, error)
}

type Committer interface {
	Commit(sentence []store.Commit) error
}

// RequestFactory builds the base request for a key from the configured defaults.
type RequestFactory func(key string) *entity.Request

type Server struct {
	predictor  Predictor
	committer  Committer
	newRequest RequestFactory
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
}

// NewServer serves requests read from r and writes responses to w. committer may be nil.
func NewServer(predictor Predictor, committer Committer, newRequest RequestFactory, r io.Reader, w io.Writer) *Server {
	return &Server{
		predictor:  predictor,
		committer:  committer,
		newRequest: newRequest,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
	}
}

// Start handles requests until the input ends or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	logger.Debug("starting server")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			logger.Error("failed to decode request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		if err := s.enc.Encode(s.Handle(ctx, &req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
}

func (s *Server) Handle(ctx context.Context, req *Request) *Response {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	switch req.Action {
	case "", "suggest":
		return s.handleSuggest(ctx, req)
	case "commit":
		return s.handleCommit(req)
	case "health":
		return &Response{ID: req.ID, OK: true}
	default:
		return errorResponse(req.ID, fmt.Sprintf("unknown action: %s", req.Action))
	}
}

func (s *Server) handleSuggest(ctx context.Context, in *Request) *Response {
	// An empty key asks for what follows the history word.
	if in.Key == "" && in.HistoryValue == "" {
		return errorResponse(in.ID, "missing 'key' parameter")
	}
	if entity.CharLen(in.Key) > maxKeyLength {
		return errorResponse(in.ID, fmt.Sprintf("key exceeds maximum length of %d characters", maxKeyLength))
	}

	req := s.newRequest(in.Key)
	if in.Limit > 0 {
		req.MaxCandidates = in.Limit
	}
	if in.Kind != "" {
		kind, err := entity.ParseRequestKind(in.Kind)
		if err != nil {
			return errorResponse(in.ID, err.Error())
		}
		req.Kind = kind
	}
	if in.Mixed != nil {
		req.MixedConversion = *in.Mixed
	}
	if in.HistoryValue != "" {
		req.History = &entity.History{
			Key:     in.HistoryKey,
			Value:   in.HistoryValue,
			LeftID:  in.HistoryLID,
			RightID: in.HistoryRID,
			Cost:    in.HistoryCost,
		}
	}
	req.Debug = req.Debug || in.Debug

	start := time.Now()
	cands, ok, err := s.predictor.Predict(ctx, req)
	if err != nil {
		logger.Error("prediction failed for %q: %v", in.Key, err)
		return errorResponse(in.ID, err.Error())
	}

	resp := &Response{ID: in.ID, OK: ok, TimeTaken: time.Since(start).Milliseconds()}
	for _, c := range cands {
		out := Candidate{
			Key:         c.Key,
			Value:       c.Value,
			Cost:        c.Cost,
			LeftID:      c.LeftID,
			RightID:     c.RightID,
			Description: c.Description,
		}
		if req.Debug {
			out.Log = c.Log
		}
		resp.Candidates = append(resp.Candidates, out)
	}
	resp.Count = len(resp.Candidates)
	return resp
}

func (s *Server) handleCommit(req *Request) *Response {
	if s.committer == nil {
		return errorResponse(req.ID, "commits are not recorded by this server")
	}
	sentence := make([]store.Commit, 0, len(req.Commits))
	for _, w := range req.Commits {
		if w.Key == "" || w.Value == "" {
			continue
		}
		sentence = append(sentence, store.Commit{Key: w.Key, Value: w.Value, LeftID: w.LeftID, RightID: w.RightID})
	}
	if err := s.committer.Commit(sentence); err != nil {
		logger.Error("failed to record commit: %v", err)
		return errorResponse(req.ID, err.Error())
	}
	return &Response{ID: req.ID, OK: true, Count: len(sentence)}
}

func errorResponse(id, message string) *Response {
	return &Response{ID: id, Error: message}
}
