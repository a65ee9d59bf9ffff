package needle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentAccumulator_AddAndDrain(t *testing.T) {
	acc := NewConcurrentAccumulator(4)
	acc.Add(1, 0.5)
	acc.Add(1, 0.5)
	acc.Add(2, 1.0)

	drained := acc.Drain()
	assert.Equal(t, 1.0, drained[1])
	assert.Equal(t, 1.0, drained[2])
}

func TestConcurrentAccumulator_Erase(t *testing.T) {
	acc := NewConcurrentAccumulator(4)
	acc.Add(3, 2.0)
	acc.Erase(3)

	drained := acc.Drain()
	_, ok := drained[3]
	assert.False(t, ok)
}

func TestConcurrentAccumulator_DefaultShardCount(t *testing.T) {
	acc := NewConcurrentAccumulator(0)
	assert.Len(t, acc.shards, defaultAccumulatorShards)
}

func TestConcurrentAccumulator_ConcurrentAddIsSafe(t *testing.T) {
	acc := NewConcurrentAccumulator(8)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			acc.Add(id%10, 1.0)
		}(i)
	}
	wg.Wait()

	drained := acc.Drain()
	total := 0.0
	for _, v := range drained {
		total += v
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}
