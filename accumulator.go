package needle

import "sync"

// defaultAccumulatorShards is the default shard count for a
// ConcurrentAccumulator, picked to comfortably exceed any realistic
// worker-pool size.
const defaultAccumulatorShards = 20

// accumulatorShard is one lock-protected partition of the accumulator's
// document-id→relevance map.
type accumulatorShard struct {
	mu      sync.Mutex
	entries map[int]float64
}

// ConcurrentAccumulator is a sharded mutable map of document-id to
// relevance, used by the parallel ranking path so that concurrent add/
// erase calls against distinct ids only serialize when they land on the
// same shard.
type ConcurrentAccumulator struct {
	shards []accumulatorShard
}

// NewConcurrentAccumulator returns an accumulator with the given shard
// count. A count <= 0 falls back to defaultAccumulatorShards.
func NewConcurrentAccumulator(shardCount int) *ConcurrentAccumulator {
	if shardCount <= 0 {
		shardCount = defaultAccumulatorShards
	}
	a := &ConcurrentAccumulator{shards: make([]accumulatorShard, shardCount)}
	for i := range a.shards {
		a.shards[i].entries = make(map[int]float64)
	}
	return a
}

func (a *ConcurrentAccumulator) shardFor(id int) *accumulatorShard {
	n := len(a.shards)
	idx := id % n
	if idx < 0 {
		idx += n
	}
	return &a.shards[idx]
}

// Add locks only the shard owning id and increments its entry, creating
// it at 0.0 if absent.
func (a *ConcurrentAccumulator) Add(id int, delta float64) {
	s := a.shardFor(id)
	s.mu.Lock()
	s.entries[id] += delta
	s.mu.Unlock()
}

// Erase locks only the shard owning id and removes its entry, if present.
func (a *ConcurrentAccumulator) Erase(id int) {
	s := a.shardFor(id)
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Drain merges all shards into a single id→relevance map. Shards are
// locked one at a time, never all at once, since no caller needs a
// consistent snapshot across the whole accumulator mid-drain.
func (a *ConcurrentAccumulator) Drain() map[int]float64 {
	out := make(map[int]float64)
	for i := range a.shards {
		s := &a.shards[i]
		s.mu.Lock()
		for id, relevance := range s.entries {
			out[id] = relevance
		}
		s.mu.Unlock()
	}
	return out
}
