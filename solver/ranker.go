package solver

import (
	"context"
	"errors"
	"sort"
	"sync"

	"wordler/game"
)

// ErrNoCandidates is returned when there is no guess to rank. It signals a
// caller error ("no playable guess remains") and is distinct from an empty
// candidate pool, which is an ordinary end-of-game state.
var ErrNoCandidates = errors.New("no guesses to rank")

type Option func(*Ranker)

// WithCache shares a memoization cache across ranking passes.
func WithCache(cache *Cache) Option {
	return func(r *Ranker) {
		r.cache = cache
	}
}

// WithMetrics enables metrics collection for each ranking pass.
func WithMetrics() Option {
	return func(r *Ranker) {
		r.metrics = NewCollector()
	}
}

// Ranker evaluates guesses against a candidate pool in parallel. Scoring
// one guess is independent, side-effect-free work, so the pass is a plain
// fork-join over a task list with a deterministic reduction at the end.
type Ranker struct {
	goroutines int
	cache      *Cache
	metrics    Collector
}

func New(goroutines int, options ...Option) *Ranker {
	if goroutines <= 0 {
		goroutines = 1
	}
	r := &Ranker{
		goroutines: goroutines,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// RankGuesses scores every allowed guess against the candidate pool and
// returns them ordered best (lowest score) first. Ties break on
// lexicographic word order, so the ranking is identical for any worker
// count and scheduling.
//
// state only keys the ranking cache; the scores themselves depend on the
// allowed guesses, the pool and the weights.
//
// On context cancellation the remaining guesses are abandoned and the
// sorted guesses scored so far are returned together with the context
// error, giving callers a best-effort ranking under deadline pressure.
func (r *Ranker) RankGuesses(ctx context.Context, allowed, pool []game.Word, weights Weights, state game.State) ([]ScoredGuess, RankMetric, error) {
	r.metrics.Start(r.goroutines)
	if len(allowed) == 0 {
		return nil, r.metrics.Complete(), ErrNoCandidates
	}

	allowedHash := HashPool(allowed)
	poolHash := HashPool(pool)
	if ranked, ok := r.cache.ranking(state, allowedHash, poolHash); ok {
		r.metrics.SetRankingHit()
		return ranked, r.metrics.Complete(), nil
	}

	tasks := make(chan int, len(allowed))
	for i := range allowed {
		tasks <- i
	}
	close(tasks)

	scores := make([]float64, len(allowed))
	scored := make([]bool, len(allowed))

	workers := r.goroutines
	if workers > len(allowed) {
		workers = len(allowed)
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				select {
				case <-ctx.Done():
					return
				default:
				}
				scores[idx] = r.scoreGuess(allowed[idx], pool, poolHash, weights)
				scored[idx] = true
				r.metrics.AddGuess()
			}
		}()
	}
	wg.Wait()

	ranked := make([]ScoredGuess, 0, len(allowed))
	for i, g := range allowed {
		if scored[i] {
			ranked = append(ranked, ScoredGuess{Word: g, Score: scores[i]})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})

	if err := ctx.Err(); err != nil {
		r.metrics.SetCancelled()
		return ranked, r.metrics.Complete(), err
	}

	r.cache.putRanking(state, allowedHash, poolHash, ranked)
	return ranked, r.metrics.Complete(), nil
}

func (r *Ranker) scoreGuess(guess game.Word, pool []game.Word, poolHash PoolHash, weights Weights) float64 {
	if sizes, ok := r.cache.bucketSizes(guess, poolHash); ok {
		r.metrics.AddBucketHit()
		return scoreFromSizes(pool, sizes, weights)
	}
	sizes := bucketSizes(guess, pool)
	r.cache.putBucketSizes(guess, poolHash, sizes)
	return scoreFromSizes(pool, sizes, weights)
}
