package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"wordler/game"
)

var ErrInvalidWeight = errors.New("weights must be positive")

// WeightTable biases scoring toward historically likely answers. Words
// without an entry weigh 1, so a nil table means uniform weighting.
type WeightTable struct {
	weights map[game.Word]float64
}

// NewWeightTable validates and copies a weight mapping. Weights must be
// strictly positive; rejecting them at construction keeps the scorer free
// of per-lookup validation.
func NewWeightTable(weights map[game.Word]float64) (*WeightTable, error) {
	copied := make(map[game.Word]float64, len(weights))
	for w, v := range weights {
		if v <= 0 {
			return nil, fmt.Errorf("weight %v for %q: %w", v, w, ErrInvalidWeight)
		}
		copied[w] = v
	}
	return &WeightTable{weights: copied}, nil
}

// Weight implements solver.Weights.
func (t *WeightTable) Weight(w game.Word) float64 {
	if t == nil {
		return 1
	}
	if v, ok := t.weights[w]; ok {
		return v
	}
	return 1
}

// Len reports how many words carry an explicit weight.
func (t *WeightTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.weights)
}

// LoadWeights reads a two-column CSV of word,weight rows. A leading
// "word,weight" header is skipped.
func LoadWeights(path string) (*WeightTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file: %w", err)
	}

	weights := make(map[game.Word]float64, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == "word" {
			continue
		}
		w, err := game.ParseWord(row[0])
		if err != nil {
			return nil, fmt.Errorf("weights row %d: %w", i+1, err)
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("weights row %d: %w", i+1, err)
		}
		weights[w] = v
	}
	return NewWeightTable(weights)
}
