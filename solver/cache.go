package solver

import (
	"hash/fnv"
	"sync"

	"wordler/game"
)

// PoolHash fingerprints a candidate pool by content for cache keying.
type PoolHash uint64

// HashPool hashes the pool's words in order with FNV-1a. Words are fixed
// length, so no separator is needed.
func HashPool(pool []game.Word) PoolHash {
	h := fnv.New64a()
	for _, w := range pool {
		h.Write([]byte(w))
	}
	return PoolHash(h.Sum64())
}

type bucketKey struct {
	guess game.Word
	pool  PoolHash
}

type rankKey struct {
	state   game.State
	allowed PoolHash
	pool    PoolHash
}

// Cache memoizes pure solver results: outcome-bucket partitions per
// (guess, pool) and completed rankings per (state, allowed, pool). Entries
// are values keyed by input and never invalidated; populating the same key
// twice from concurrent workers wastes work but cannot corrupt a result.
//
// A Cache is injected into the Ranker rather than shared as package state,
// so tests can isolate one per scenario. A nil *Cache disables caching.
// Cached rankings assume a fixed weight table for the Cache's lifetime.
type Cache struct {
	mu      sync.RWMutex
	buckets map[bucketKey][]int
	ranks   map[rankKey][]ScoredGuess
}

func NewCache() *Cache {
	return &Cache{
		buckets: make(map[bucketKey][]int),
		ranks:   make(map[rankKey][]ScoredGuess),
	}
}

func (c *Cache) bucketSizes(guess game.Word, pool PoolHash) ([]int, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	sizes, ok := c.buckets[bucketKey{guess: guess, pool: pool}]
	return sizes, ok
}

func (c *Cache) putBucketSizes(guess game.Word, pool PoolHash, sizes []int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.buckets[bucketKey{guess: guess, pool: pool}] = sizes
	c.mu.Unlock()
}

// ranking returns a completed ranking. Callers must treat it as read-only.
func (c *Cache) ranking(state game.State, allowed, pool PoolHash) ([]ScoredGuess, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ranked, ok := c.ranks[rankKey{state: state, allowed: allowed, pool: pool}]
	return ranked, ok
}

func (c *Cache) putRanking(state game.State, allowed, pool PoolHash, ranked []ScoredGuess) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.ranks[rankKey{state: state, allowed: allowed, pool: pool}] = ranked
	c.mu.Unlock()
}
