package solver

import (
	"wordler/game"
)

// Weights supplies per-word scoring weights, biasing the ranking toward
// historically likely answers. A nil Weights means uniform weight 1.
type Weights interface {
	Weight(game.Word) float64
}

// ScoredGuess pairs a guess with its score. Lower scores are better.
type ScoredGuess struct {
	Word  game.Word
	Score float64
}

// ScoreGuess estimates the ambiguity left after playing guess against the
// candidate pool. Every candidate is treated as the hypothetical true word
// and bucketed by its simulated outcome; the score is the weighted mean
// size of the bucket each candidate lands in. Summing a bucket's size once
// per member is what rewards fine partitions: with uniform weights the
// score is the mean squared bucket size, an estimate of the expected
// remaining-candidate count.
func ScoreGuess(guess game.Word, pool []game.Word, weights Weights) float64 {
	return scoreFromSizes(pool, bucketSizes(guess, pool), weights)
}

// bucketSizes returns, aligned with pool, the size of the outcome bucket
// each candidate falls into. At most 3^WordLen buckets exist; in practice
// far fewer.
func bucketSizes(guess game.Word, pool []game.Word) []int {
	buckets := make(map[game.Outcome]int, len(pool))
	outcomes := make([]game.Outcome, len(pool))
	for i, candidate := range pool {
		out := game.ComputeOutcome(guess, candidate)
		outcomes[i] = out
		buckets[out]++
	}
	sizes := make([]int, len(pool))
	for i, out := range outcomes {
		sizes[i] = buckets[out]
	}
	return sizes
}

func scoreFromSizes(pool []game.Word, sizes []int, weights Weights) float64 {
	var sum, total float64
	for i, candidate := range pool {
		w := 1.0
		if weights != nil {
			w = weights.Weight(candidate)
		}
		sum += w * float64(sizes[i])
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}
