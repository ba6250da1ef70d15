package solver

import (
	"sync/atomic"
	"time"
)

// RankMetric summarizes one ranking pass.
type RankMetric struct {
	Goroutines    int
	Duration      time.Duration
	GuessesScored int
	BucketHits    int
	RankingHit    bool
	Cancelled     bool
}

// Collector gathers ranking metrics. Implementations must be safe for
// concurrent use by the ranking workers.
type Collector interface {
	Start(goroutines int)
	AddGuess()
	AddBucketHit()
	SetRankingHit()
	SetCancelled()
	Complete() RankMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	guesses    atomic.Int64
	bucketHits atomic.Int64
	rankingHit atomic.Bool
	cancelled  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new ranking pass.
func (m *collector) Start(goroutines int) {
	m.goroutines = goroutines
	m.startTime = time.Now()
	m.guesses.Store(0)
	m.bucketHits.Store(0)
	m.rankingHit.Store(false)
	m.cancelled.Store(false)
}

func (m *collector) AddGuess() {
	m.guesses.Add(1)
}

func (m *collector) AddBucketHit() {
	m.bucketHits.Add(1)
}

func (m *collector) SetRankingHit() {
	m.rankingHit.Store(true)
}

func (m *collector) SetCancelled() {
	m.cancelled.Store(true)
}

func (m *collector) Complete() RankMetric {
	return RankMetric{
		Goroutines:    m.goroutines,
		Duration:      time.Since(m.startTime),
		GuessesScored: int(m.guesses.Load()),
		BucketHits:    int(m.bucketHits.Load()),
		RankingHit:    m.rankingHit.Load(),
		Cancelled:     m.cancelled.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)            {}
func (dummyCollector) AddGuess()            {}
func (dummyCollector) AddBucketHit()        {}
func (dummyCollector) SetRankingHit()       {}
func (dummyCollector) SetCancelled()        {}
func (dummyCollector) Complete() RankMetric { return RankMetric{} }
