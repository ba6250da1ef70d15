package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores campaign records as CSV files in a timestamped directory,
// one directory per campaign run.
type Writer struct {
	baseDir string
}

// NewWriter creates outDir/name/<timestamp>/ and returns a Writer rooted
// there.
func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create campaign directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir reports the directory records are written to.
func (w *Writer) Dir() string { return w.baseDir }

// WriteGameRecords stores one row per simulated game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "mode", "answer", "status", "rounds", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Mode,
			record.Answer,
			record.Status,
			strconv.Itoa(record.Rounds),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}

// WriteRoundRecords stores one row per played guess.
func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "round_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "round", "guess", "outcome", "score", "pool_size", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Round),
			record.Guess,
			record.Outcome,
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.PoolSize),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}
	return nil
}
