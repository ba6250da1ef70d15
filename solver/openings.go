package solver

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"wordler/game"
)

// The full-vocabulary opening pass is by far the most expensive ranking.
// WriteRanking and ReadRanking persist it as a two-column table so later
// runs can inject it at round 1 instead of recomputing.

// WriteRanking writes a ranking as CSV with a "word,score" header, best
// guess first.
func WriteRanking(path string, ranked []ScoredGuess) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ranking file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write([]string{"word", "score"}); err != nil {
		return fmt.Errorf("failed to write ranking header: %w", err)
	}
	for _, sg := range ranked {
		row := []string{sg.Word.String(), strconv.FormatFloat(sg.Score, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write ranking row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadRanking loads a ranking written by WriteRanking, preserving order.
func ReadRanking(path string) ([]ScoredGuess, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ranking file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking file: %w", err)
	}

	ranked := make([]ScoredGuess, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == "word" {
			continue
		}
		w, err := game.ParseWord(row[0])
		if err != nil {
			return nil, fmt.Errorf("ranking row %d: %w", i+1, err)
		}
		score, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ranking row %d: %w", i+1, err)
		}
		ranked = append(ranked, ScoredGuess{Word: w, Score: score})
	}
	return ranked, nil
}
