package ensemble

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/model/ranking"
	"golang.org/x/sync/errgroup"
)

const (
	SuggestionTimeout = 2 * time.Second
	lightTimeout      = 100 * time.Millisecond
)

// Prediction is one ranked answer of ProgressivePredict.
type Prediction struct {
	Candidates []entity.Candidate
	OK         bool
	// Complete is false while heavy aggregators are still pending.
	Complete bool
}

// Ensemble runs the aggregators of a request and ranks the pool they produce.
// Light aggregators are available right away, heavy ones are added once the lexicon is loaded.
type Ensemble struct {
	ranker      atomic.Pointer[ranking.Ranker]
	LightModels atomic.Value // []entity.Aggregator
	HeavyModels atomic.Value // []entity.Aggregator
	Models      atomic.Value // []entity.Aggregator
}

func NewEnsemble(ranker *ranking.Ranker, lightModels []entity.Aggregator) *Ensemble {
	e := &Ensemble{}
	e.ranker.Store(ranker)
	e.LightModels.Store(lightModels)
	e.HeavyModels.Store([]entity.Aggregator{})
	e.Models.Store(lightModels)
	return e
}

// SetRanker replaces the ranker, typically once real lexicon collaborators are available.
func (e *Ensemble) SetRanker(r *ranking.Ranker) {
	e.ranker.Store(r)
}

func (e *Ensemble) AddHeavyModel(m entity.Aggregator) {
	// append heavy
	heavy := e.HeavyModels.Load().([]entity.Aggregator)
	newHeavy := make([]entity.Aggregator, len(heavy)+1)
	copy(newHeavy, heavy)
	newHeavy[len(heavy)] = m
	e.HeavyModels.Store(newHeavy)

	// append all
	all := e.Models.Load().([]entity.Aggregator)
	newAll := make([]entity.Aggregator, len(all)+1)
	copy(newAll, all)
	newAll[len(all)] = m
	e.Models.Store(newAll)
}

// Predict ranks the pool of every aggregator.
func (e *Ensemble) Predict(ctx context.Context, req *entity.Request) ([]entity.Candidate, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, SuggestionTimeout)
	defer cancel()

	pool, err := aggregate(ctx, e.Models.Load().([]entity.Aggregator), req)
	if err != nil {
		return nil, false, err
	}
	candidates, ok := e.ranker.Load().Process(req, pool)
	return candidates, ok, nil
}

// ProgressivePredict first sends the ranking of the light aggregators, then the ranking of all of them.
func (e *Ensemble) ProgressivePredict(req *entity.Request) (<-chan Prediction, error) {
	resultChan := make(chan Prediction, 2)
	ctx, cancel := context.WithTimeout(context.Background(), SuggestionTimeout)

	light := e.LightModels.Load().([]entity.Aggregator)
	heavy := e.HeavyModels.Load().([]entity.Aggregator)

	go func() {
		defer cancel()
		defer close(resultChan)

		var lightPool []entity.Result
		if len(light) > 0 {
			lightCtx, lightCancel := context.WithTimeout(ctx, lightTimeout)
			lightPool, _ = aggregate(lightCtx, light, req)
			lightCancel()

			// the ranker marks records in place, rank a copy
			candidates, ok := e.ranker.Load().Process(req, append([]entity.Result(nil), lightPool...))
			resultChan <- Prediction{Candidates: candidates, OK: ok, Complete: len(heavy) == 0}
		}

		if len(heavy) > 0 {
			heavyPool, _ := aggregate(ctx, heavy, req)
			candidates, ok := e.ranker.Load().Process(req, append(lightPool, heavyPool...))
			resultChan <- Prediction{Candidates: candidates, OK: ok, Complete: true}
		}
	}()

	return resultChan, nil
}

// aggregate runs models concurrently. The pool keeps model order so ranking ties stay deterministic.
// A failing or late aggregator only loses its own records.
func aggregate(ctx context.Context, models []entity.Aggregator, req *entity.Request) ([]entity.Result, error) {
	slots := make([][]entity.Result, len(models))
	g, ctx := errgroup.WithContext(ctx)

	for i, m := range models {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				logger.Debug("[%s] skipped: %v", m.Name(), ctx.Err())
				return nil
			default:
				results, err := m.Aggregate(req)
				if err != nil {
					logger.Warn("[%s] aggregate failed: %v", m.Name(), err)
					return nil
				}
				slots[i] = results
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []entity.Result
	for _, s := range slots {
		pool = append(pool, s...)
	}
	return pool, nil
}
