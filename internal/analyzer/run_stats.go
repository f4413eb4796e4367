package analyzer

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/penwyp/go-expiry-bar/internal/util"
)

// RunStats counts what one analyzer run read and how the entities were classified.
type RunStats struct {
	files    int64
	failures int64
	mu       sync.Mutex
	statuses map[string]int
}

// NewRunStats creates a new RunStats instance
func NewRunStats() *RunStats {
	return &RunStats{
		statuses: make(map[string]int),
	}
}

// IncrementFiles increases the parsed file count
func (rs *RunStats) IncrementFiles() {
	atomic.AddInt64(&rs.files, 1)
}

// IncrementFailure increases the failed file count
func (rs *RunStats) IncrementFailure() {
	atomic.AddInt64(&rs.failures, 1)
}

// Record counts one entity under its status.
func (rs *RunStats) Record(status string) {
	rs.mu.Lock()
	rs.statuses[status]++
	rs.mu.Unlock()
}

// GetStats returns the file counters and the number of recorded entities.
func (rs *RunStats) GetStats() (files, failures int64, entities int) {
	files = atomic.LoadInt64(&rs.files)
	failures = atomic.LoadInt64(&rs.failures)

	rs.mu.Lock()
	for _, n := range rs.statuses {
		entities += n
	}
	rs.mu.Unlock()
	return
}

// StatusCounts returns a copy of the per-status entity counts.
func (rs *RunStats) StatusCounts() map[string]int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	counts := make(map[string]int, len(rs.statuses))
	for status, n := range rs.statuses {
		counts[status] = n
	}
	return counts
}

// PrintFinalStats logs the run totals and the per-status breakdown
func (rs *RunStats) PrintFinalStats() {
	files, failures, entities := rs.GetStats()

	util.LogInfo(fmt.Sprintf("Analysis complete: %d files (%d failed), %d entities", files, failures, entities))

	counts := rs.StatusCounts()
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		util.LogDebug(fmt.Sprintf("  %s: %d entities", status, counts[status]))
	}
}
