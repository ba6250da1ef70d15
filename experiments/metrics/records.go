package metrics

import "time"

// GameRecord is one simulated game in a campaign.
type GameRecord struct {
	ID       int
	Mode     string
	Answer   string
	Status   string
	Rounds   int
	Duration time.Duration
}

// RoundRecord is one guess within a recorded game.
type RoundRecord struct {
	Game     int // GameRecord.ID
	Round    int
	Guess    string
	Outcome  string
	Score    float64
	PoolSize int
	Duration time.Duration
}

// Summary aggregates a campaign the way the round distribution is usually
// quoted: how many games finished in 1..n rounds, plus both loss kinds.
type Summary struct {
	Games          int
	Won            int
	RoundCounts    map[int]int // solved games by round count
	Exhausted      []string    // answers lost to the round budget
	MissingAnswers []string    // answers absent from the vocabulary
}

// Summarize folds game records into a Summary.
func Summarize(records []GameRecord) Summary {
	s := Summary{RoundCounts: make(map[int]int)}
	for _, r := range records {
		s.Games++
		switch r.Status {
		case "solved":
			s.Won++
			s.RoundCounts[r.Rounds]++
		case "exhausted_rounds":
			s.Exhausted = append(s.Exhausted, r.Answer)
		case "no_remaining_candidates":
			s.MissingAnswers = append(s.MissingAnswers, r.Answer)
		}
	}
	return s
}

// WinRate reports the fraction of games won, 0 for an empty campaign.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}
