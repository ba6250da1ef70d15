package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wordler/game"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("normalizes, deduplicates and keeps order", func(t *testing.T) {
		path := writeTempFile(t, "words.txt", "RAISE\n\n# comment\nbound\nraise\n  crane \n")

		words, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, []game.Word{"raise", "bound", "crane"}, words)
	})

	t.Run("rejects malformed words with the line number", func(t *testing.T) {
		path := writeTempFile(t, "words.txt", "raise\noops!\n")

		_, err := Load(path)

		require.ErrorIs(t, err, game.ErrWordChar)
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		path := writeTempFile(t, "words.txt", "# nothing here\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrEmptyVocabulary)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))

		require.Error(t, err)
	})
}

func TestLoadDefault(t *testing.T) {
	t.Run("embedded list is non-empty and deduplicated", func(t *testing.T) {
		words, err := LoadDefault()

		require.NoError(t, err)
		require.NotEmpty(t, words)
		seen := make(map[game.Word]struct{}, len(words))
		for _, w := range words {
			_, dup := seen[w]
			require.False(t, dup, "duplicate %q in embedded list", w)
			seen[w] = struct{}{}
		}
	})

	t.Run("env override wins", func(t *testing.T) {
		path := writeTempFile(t, "words.txt", "bound\nfound\n")
		t.Setenv(WordsFileEnv, path)

		words, err := LoadDefault()

		require.NoError(t, err)
		require.Equal(t, []game.Word{"bound", "found"}, words)
	})
}

func TestWeightTable(t *testing.T) {
	t.Run("missing words weigh one", func(t *testing.T) {
		table, err := NewWeightTable(map[game.Word]float64{"raise": 2.5})

		require.NoError(t, err)
		require.Equal(t, 2.5, table.Weight("raise"))
		require.Equal(t, 1.0, table.Weight("crane"))
	})

	t.Run("nil table is uniform", func(t *testing.T) {
		var table *WeightTable

		require.Equal(t, 1.0, table.Weight("raise"))
		require.Zero(t, table.Len())
	})

	t.Run("rejects non-positive weights at construction", func(t *testing.T) {
		_, err := NewWeightTable(map[game.Word]float64{"raise": 0})
		require.ErrorIs(t, err, ErrInvalidWeight)

		_, err = NewWeightTable(map[game.Word]float64{"raise": -1})
		require.ErrorIs(t, err, ErrInvalidWeight)
	})
}

func TestLoadWeights(t *testing.T) {
	t.Run("reads word,weight rows with header", func(t *testing.T) {
		path := writeTempFile(t, "weights.csv", "word,weight\nraise,2.5\ncrane,0.5\n")

		table, err := LoadWeights(path)

		require.NoError(t, err)
		require.Equal(t, 2, table.Len())
		require.Equal(t, 2.5, table.Weight("raise"))
		require.Equal(t, 0.5, table.Weight("crane"))
	})

	t.Run("propagates weight validation", func(t *testing.T) {
		path := writeTempFile(t, "weights.csv", "raise,0\n")

		_, err := LoadWeights(path)

		require.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("rejects malformed rows", func(t *testing.T) {
		path := writeTempFile(t, "weights.csv", "raise,notanumber\n")

		_, err := LoadWeights(path)

		require.Error(t, err)
	})
}
