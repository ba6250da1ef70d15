// Package engine drives simulated games: pick the best guess, observe the
// feedback against a fixed secret answer, tighten the constraints, repeat
// until solved or out of rounds.
package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"wordler/game"
	"wordler/solver"
)

// DefaultMaxRounds is the classic round budget.
const DefaultMaxRounds = 6

// Status is the terminal state of one simulated game. Losses are ordinary
// values, not errors: a campaign over thousands of answers continues past
// them without special-casing.
type Status string

const (
	// StatusSolved means a guess produced an all-correct outcome.
	StatusSolved Status = "solved"
	// StatusExhausted means the round budget ran out: a strategic loss.
	StatusExhausted Status = "exhausted_rounds"
	// StatusNoCandidates means the accumulated constraints filtered out
	// every vocabulary word, which happens when the secret answer is not
	// in the working vocabulary. It is reported separately from a
	// strategic loss because it indicates a coverage gap, not a bad
	// strategy.
	StatusNoCandidates Status = "no_remaining_candidates"
)

// Mode selects which words may be guessed.
type Mode string

const (
	// ModeNormal allows any vocabulary word, consistent or not. The pool
	// is re-filtered from the full vocabulary each round.
	ModeNormal Mode = "normal"
	// ModeHard restricts guesses to the current candidate pool, which by
	// construction never grows. This changes the search, not just the UI:
	// a bucket of mutually similar words may force one-at-a-time
	// elimination.
	ModeHard Mode = "hard"
)

// Round records one played guess.
type Round struct {
	Guess    game.Word
	Outcome  game.Outcome
	Score    float64
	PoolSize int // candidates remaining after this guess
	Duration time.Duration
}

// Result is the outcome of one simulated game.
type Result struct {
	Answer game.Word
	Mode   Mode
	Status Status
	Rounds []Round
}

// Won reports whether the game ended in a solve.
func (r Result) Won() bool { return r.Status == StatusSolved }

// Config carries the read-only inputs of a simulation. Vocabulary and
// weights are shared by all games and never mutated.
type Config struct {
	Vocabulary []game.Word
	Weights    solver.Weights
	Mode       Mode
	MaxRounds  int // 0 means DefaultMaxRounds

	// Opening, when non-empty, is a precomputed round-1 ranking (for
	// example loaded via solver.ReadRanking) used instead of ranking the
	// full vocabulary again. It applies to round 1 only.
	Opening []solver.ScoredGuess

	// Ranker evaluates guesses from round 2 on (and round 1 without an
	// Opening). A nil Ranker gets a single-threaded uncached default.
	Ranker *solver.Ranker
}

// Play simulates one game against a fixed secret answer.
//
// Errors are reserved for caller bugs and cancellation; every legitimate
// game ending, including both loss kinds, comes back as a Result status.
func Play(ctx context.Context, answer game.Word, cfg Config) (Result, error) {
	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	ranker := cfg.Ranker
	if ranker == nil {
		ranker = solver.New(1)
	}

	state := game.Initial()
	pool := cfg.Vocabulary
	result := Result{Answer: answer, Mode: cfg.Mode}

	for round := 1; round <= maxRounds; round++ {
		start := time.Now()
		guess, score, err := pickGuess(ctx, round, cfg, ranker, state, pool)
		if err != nil {
			return result, err
		}

		outcome := game.ComputeOutcome(guess, answer)
		state = state.Advance(guess, outcome)
		if cfg.Mode == ModeHard {
			pool = game.Filter(pool, state)
		} else {
			pool = game.Filter(cfg.Vocabulary, state)
		}

		result.Rounds = append(result.Rounds, Round{
			Guess:    guess,
			Outcome:  outcome,
			Score:    score,
			PoolSize: len(pool),
			Duration: time.Since(start),
		})
		log.Debug().
			Str("answer", answer.String()).
			Int("round", round).
			Str("guess", guess.String()).
			Str("outcome", outcome.String()).
			Int("pool", len(pool)).
			Msg("played round")

		if outcome.AllCorrect() {
			result.Status = StatusSolved
			return result, nil
		}
		if len(pool) == 0 {
			result.Status = StatusNoCandidates
			return result, nil
		}
	}

	result.Status = StatusExhausted
	return result, nil
}

func pickGuess(ctx context.Context, round int, cfg Config, ranker *solver.Ranker, state game.State, pool []game.Word) (game.Word, float64, error) {
	if round == 1 && len(cfg.Opening) > 0 {
		top := cfg.Opening[0]
		return top.Word, top.Score, nil
	}

	allowed := cfg.Vocabulary
	if cfg.Mode == ModeHard {
		allowed = pool
	}
	ranked, _, err := ranker.RankGuesses(ctx, allowed, pool, cfg.Weights, state)
	if err != nil {
		return "", 0, err
	}
	return ranked[0].Word, ranked[0].Score, nil
}
