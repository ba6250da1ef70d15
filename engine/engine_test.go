package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wordler/game"
	"wordler/solver"
)

var oundVocab = []game.Word{"bound", "found", "hound", "mound", "pound", "sound", "wound"}

func TestPlay(t *testing.T) {
	t.Run("solves when the ranking reaches the answer", func(t *testing.T) {
		// Round 1 ties across the whole vocabulary and lexicographic order
		// picks bound; round 2 ties across the six remaining words and
		// picks found, which is the answer.
		result, err := Play(context.Background(), "found", Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
		})

		require.NoError(t, err)
		require.Equal(t, StatusSolved, result.Status)
		require.True(t, result.Won())
		require.Len(t, result.Rounds, 2)
		require.Equal(t, game.Word("bound"), result.Rounds[0].Guess)
		require.Equal(t, game.Word("found"), result.Rounds[1].Guess)
		require.True(t, result.Rounds[1].Outcome.AllCorrect())
	})

	t.Run("exhausts the round budget on a one-at-a-time pool", func(t *testing.T) {
		// In hard mode the *ound words only differ in their first letter,
		// so each guess eliminates exactly one candidate. Six rounds of
		// lexicographic ties never reach wound.
		result, err := Play(context.Background(), "wound", Config{
			Vocabulary: oundVocab,
			Mode:       ModeHard,
		})

		require.NoError(t, err)
		require.Equal(t, StatusExhausted, result.Status)
		require.False(t, result.Won())
		require.Len(t, result.Rounds, DefaultMaxRounds)
	})

	t.Run("hard mode only proposes guesses consistent with the state", func(t *testing.T) {
		result, err := Play(context.Background(), "wound", Config{
			Vocabulary: oundVocab,
			Mode:       ModeHard,
		})
		require.NoError(t, err)

		state := game.Initial()
		for i, round := range result.Rounds {
			require.True(t, state.Consistent(round.Guess),
				"round %d guess %q violates the accumulated constraints", i+1, round.Guess)
			state = state.Advance(round.Guess, round.Outcome)
		}
	})

	t.Run("a missing answer empties the pool, never solves", func(t *testing.T) {
		// crane shares only the 'n' with the *ound words; one guess wipes
		// out the whole vocabulary.
		result, err := Play(context.Background(), "crane", Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
		})

		require.NoError(t, err)
		require.Equal(t, StatusNoCandidates, result.Status)
		require.False(t, result.Won())
		require.Equal(t, 0, result.Rounds[len(result.Rounds)-1].PoolSize,
			"the game ends at the round where the pool first empties")
	})

	t.Run("pool size never grows round over round", func(t *testing.T) {
		result, err := Play(context.Background(), "sound", Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
		})
		require.NoError(t, err)

		previous := len(oundVocab)
		for i, round := range result.Rounds {
			require.LessOrEqual(t, round.PoolSize, previous,
				"round %d grew the pool", i+1)
			previous = round.PoolSize
		}
	})

	t.Run("round one reuses an injected opening ranking", func(t *testing.T) {
		opening := []solver.ScoredGuess{
			{Word: "sound", Score: 5.0},
			{Word: "bound", Score: 5.2},
		}

		result, err := Play(context.Background(), "sound", Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
			Opening:    opening,
		})

		require.NoError(t, err)
		require.Equal(t, StatusSolved, result.Status)
		require.Len(t, result.Rounds, 1)
		require.Equal(t, game.Word("sound"), result.Rounds[0].Guess)
		require.Equal(t, 5.0, result.Rounds[0].Score, "the opening's score is carried through")
	})

	t.Run("an empty vocabulary is a caller error", func(t *testing.T) {
		_, err := Play(context.Background(), "sound", Config{Mode: ModeNormal})

		require.ErrorIs(t, err, solver.ErrNoCandidates)
	})

	t.Run("identical runs give identical histories", func(t *testing.T) {
		cfg := Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
			Ranker:     solver.New(8, solver.WithCache(solver.NewCache())),
		}

		first, err := Play(context.Background(), "sound", cfg)
		require.NoError(t, err)
		second, err := Play(context.Background(), "sound", cfg)
		require.NoError(t, err)

		require.Equal(t, len(first.Rounds), len(second.Rounds))
		for i := range first.Rounds {
			require.Equal(t, first.Rounds[i].Guess, second.Rounds[i].Guess)
			require.Equal(t, first.Rounds[i].Outcome, second.Rounds[i].Outcome)
		}
	})

	t.Run("cancellation aborts the game with an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Play(ctx, "sound", Config{
			Vocabulary: oundVocab,
			Mode:       ModeNormal,
		})

		require.ErrorIs(t, err, context.Canceled)
	})
}
