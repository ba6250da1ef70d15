// Package experiments runs simulation campaigns: every answer in a list is
// played to completion in one or more modes and the results are stored as
// CSV records for offline analysis.
package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"wordler/engine"
	"wordler/experiments/metrics"
	"wordler/game"
	"wordler/solver"
)

// Campaign describes one simulation run.
type Campaign struct {
	Name       string
	Vocabulary []game.Word
	Answers    []game.Word
	Weights    solver.Weights
	Opening    []solver.ScoredGuess
	Modes      []engine.Mode
	Goroutines int
	MaxRounds  int
	Sample     int    // when > 0, play a random subset of the answers
	Seed       uint64 // sampling seed; 0 derives one from the clock
	OutDir     string // records directory, "" skips CSV output
}

// Run plays the campaign and returns the game records per mode, writing
// CSVs when an output directory is configured. The ranking cache is shared
// across all games: simulated games that reach an identical constraint
// state reuse each other's rankings.
func Run(ctx context.Context, c Campaign) ([]metrics.GameRecord, error) {
	modes := c.Modes
	if len(modes) == 0 {
		modes = []engine.Mode{engine.ModeNormal, engine.ModeHard}
	}
	answers := sampleAnswers(c)
	ranker := solver.New(c.Goroutines, solver.WithCache(solver.NewCache()))

	log.Info().
		Str("campaign", c.Name).
		Int("answers", len(answers)).
		Int("goroutines", c.Goroutines).
		Msg("starting campaign")

	var gameRecords []metrics.GameRecord
	var roundRecords []metrics.RoundRecord
	count := 0
	for _, mode := range modes {
		for i, answer := range answers {
			start := time.Now()
			result, err := engine.Play(ctx, answer, engine.Config{
				Vocabulary: c.Vocabulary,
				Weights:    c.Weights,
				Mode:       mode,
				MaxRounds:  c.MaxRounds,
				Opening:    c.Opening,
				Ranker:     ranker,
			})
			if err != nil {
				return gameRecords, fmt.Errorf("game %d (%s, %s): %w", i+1, answer, mode, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:       count,
				Mode:     string(mode),
				Answer:   answer.String(),
				Status:   string(result.Status),
				Rounds:   len(result.Rounds),
				Duration: time.Since(start),
			})
			for ri, round := range result.Rounds {
				roundRecords = append(roundRecords, metrics.RoundRecord{
					Game:     count,
					Round:    ri + 1,
					Guess:    round.Guess.String(),
					Outcome:  round.Outcome.String(),
					Score:    round.Score,
					PoolSize: round.PoolSize,
					Duration: round.Duration,
				})
			}

			log.Info().
				Str("mode", string(mode)).
				Str("answer", answer.String()).
				Str("status", string(result.Status)).
				Int("rounds", len(result.Rounds)).
				Msgf("completed game %d of %d", i+1, len(answers))
		}

		summary := metrics.Summarize(recordsForMode(gameRecords, mode))
		log.Info().
			Str("mode", string(mode)).
			Int("games", summary.Games).
			Int("won", summary.Won).
			Float64("win_rate", summary.WinRate()).
			Strs("exhausted", summary.Exhausted).
			Strs("missing", summary.MissingAnswers).
			Msg("completed mode")
	}

	if c.OutDir != "" {
		writer, err := metrics.NewWriter(c.OutDir, c.Name)
		if err != nil {
			return gameRecords, err
		}
		if err := writer.WriteGameRecords(gameRecords); err != nil {
			return gameRecords, err
		}
		if err := writer.WriteRoundRecords(roundRecords); err != nil {
			return gameRecords, err
		}
		log.Info().Str("dir", writer.Dir()).Msg("stored campaign records")
	}

	return gameRecords, nil
}

// sampleAnswers picks the played answers: all of them, or a seeded random
// subset when Sample is set.
func sampleAnswers(c Campaign) []game.Word {
	if c.Sample <= 0 || c.Sample >= len(c.Answers) {
		return c.Answers
	}
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	picked := make([]game.Word, len(c.Answers))
	copy(picked, c.Answers)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:c.Sample]
}

func recordsForMode(records []metrics.GameRecord, mode engine.Mode) []metrics.GameRecord {
	var out []metrics.GameRecord
	for _, r := range records {
		if r.Mode == string(mode) {
			out = append(out, r)
		}
	}
	return out
}
