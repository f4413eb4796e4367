package util

import (
	"sync"
	"time"
)

// TimeProvider is the process clock. Timelines read it once at construction.
type TimeProvider struct {
	nowFunc func() time.Time
	mu      sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// GetTimeProvider returns the global time provider, creating it on first use
func GetTimeProvider() *TimeProvider {
	mu.Lock()
	defer mu.Unlock()

	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{nowFunc: time.Now}
	}
	return globalTimeProvider
}

// Freeze pins the clock to t. A zero t restores the wall clock.
func (tp *TimeProvider) Freeze(t time.Time) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if t.IsZero() {
		tp.nowFunc = time.Now
		return
	}
	tp.nowFunc = func() time.Time { return t }
}

// Now returns the current time
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.nowFunc()
}
