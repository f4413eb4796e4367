package analyzer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStats(t *testing.T) {
	stats := NewRunStats()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stats.IncrementFiles()
			if i%5 == 0 {
				stats.IncrementFailure()
			}
			if i%2 == 0 {
				stats.Record("safe")
			} else {
				stats.Record("expired")
			}
		}(i)
	}
	wg.Wait()

	files, failures, entities := stats.GetStats()
	assert.Equal(t, int64(10), files)
	assert.Equal(t, int64(2), failures)
	assert.Equal(t, 10, entities)
	assert.Equal(t, map[string]int{"safe": 5, "expired": 5}, stats.StatusCounts())

	assert.NotPanics(t, stats.PrintFinalStats)
}

func TestRunStats_StatusCountsIsACopy(t *testing.T) {
	stats := NewRunStats()
	stats.Record("safe")

	counts := stats.StatusCounts()
	counts["safe"] = 42

	assert.Equal(t, 1, stats.StatusCounts()["safe"])
}
