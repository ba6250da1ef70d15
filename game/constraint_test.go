package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateAdvance(t *testing.T) {
	t.Run("correct tiles fix positions", func(t *testing.T) {
		st := Initial().Advance("bound", ComputeOutcome("bound", "sound"))

		require.True(t, st.Consistent("sound"))
		require.True(t, st.Consistent("found"))
		require.False(t, st.Consistent("mount"), "position 5 is fixed to 'd'")
		require.False(t, st.Consistent("bound"), "'b' is globally excluded")
	})

	t.Run("present tiles exclude the position but require the letter", func(t *testing.T) {
		// arise vs raise: 'a' and 'r' are present but misplaced.
		st := Initial().Advance("arise", ComputeOutcome("arise", "raise"))

		require.True(t, st.Consistent("raise"))
		require.False(t, st.Consistent("anise"), "'a' may not stay in position 1")
		require.False(t, st.Consistent("noise"), "'a' and 'r' must occur somewhere")
	})

	t.Run("absent tiles exclude letters everywhere", func(t *testing.T) {
		st := Initial().Advance("bound", ComputeOutcome("bound", "crane"))

		require.False(t, st.Consistent("about"), "'b', 'o' and 'u' are gone")
		require.False(t, st.Consistent("podgy"), "'o' and 'd' are gone")
		require.True(t, st.Consistent("crane"))
	})

	t.Run("repeated letter with one match is not excluded globally", func(t *testing.T) {
		// appep vs apple gives ===+- : the final 'p' tile is absent even
		// though 'p' is in the word. Only the tile's position information
		// may be used; the letter must survive.
		st := Initial().Advance("appep", ComputeOutcome("appep", "apple"))

		require.True(t, st.Consistent("apple"),
			"the true word must never be filtered out by its own feedback")
	})

	t.Run("never mutates the receiver", func(t *testing.T) {
		before := Initial()
		_ = before.Advance("bound", ComputeOutcome("bound", "sound"))

		require.Equal(t, Initial(), before, "states derive, they do not mutate")
	})

	t.Run("panics on a short guess", func(t *testing.T) {
		require.Panics(t, func() {
			Initial().Advance(Word("abc"), Outcome{})
		})
	})
}

func TestStateSoundness(t *testing.T) {
	// Folding a word's own feedback into the state must never exclude it.
	words := []Word{
		"raise", "arise", "apple", "appep", "bound", "sound", "crane",
		"stews", "weeds", "grain", "grown", "mamma", "llama",
	}
	for _, guess := range words {
		for _, trueWord := range words {
			out := ComputeOutcome(guess, trueWord)
			st := Initial().Advance(guess, out)

			require.True(t, st.Consistent(trueWord),
				"guess %q outcome %s excluded true word %q", guess, out, trueWord)
		}
	}
}

func TestFilter(t *testing.T) {
	vocab := []Word{"bound", "found", "hound", "mound", "pound", "sound", "wound"}

	t.Run("keeps only consistent words", func(t *testing.T) {
		st := Initial().Advance("bound", ComputeOutcome("bound", "sound"))

		got := Filter(vocab, st)

		require.Equal(t,
			[]Word{"found", "hound", "mound", "pound", "sound", "wound"}, got)
	})

	t.Run("tightening constraints never grows the pool", func(t *testing.T) {
		st := Initial()
		pool := vocab
		for _, guess := range []Word{"bound", "found", "hound"} {
			st = st.Advance(guess, ComputeOutcome(guess, "sound"))
			next := Filter(vocab, st)

			require.LessOrEqual(t, len(next), len(pool),
				"pool may only shrink round over round")
			pool = next
		}
		require.Contains(t, pool, Word("sound"))
	})
}
