package timeline

import (
	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
)

// TotalDays is the length of the bar. Once the end has passed the bar keeps
// growing up to now so the overrun stays visible.
func (t *Timeline) TotalDays() int {
	if t.now.Before(t.end) {
		return datemath.DiffInDays(t.end, t.start)
	}
	return datemath.DiffInDays(t.now, t.start)
}

// TotalLivedDays counts days between start and min(now, end).
func (t *Timeline) TotalLivedDays() int {
	switch {
	case !t.now.After(t.start):
		return 0
	case t.now.Before(t.end):
		return datemath.DiffInDays(t.now, t.start)
	default:
		return datemath.DiffInDays(t.end, t.start)
	}
}

// SafeDays counts lived days before the threshold.
func (t *Timeline) SafeDays() int {
	switch {
	case !t.now.After(t.start):
		return 0
	case !t.now.After(t.threshold):
		return datemath.DiffInDays(t.now, t.start)
	default:
		return datemath.DiffInDays(t.threshold, t.start)
	}
}

// ExpiringDays counts lived days between the threshold and the end.
func (t *Timeline) ExpiringDays() int {
	switch {
	case !t.now.After(t.threshold):
		return 0
	case !t.now.After(t.end):
		return datemath.DiffInDays(t.now, t.threshold)
	default:
		return datemath.DiffInDays(t.end, t.threshold)
	}
}

// ExpiredDays counts days past the end.
func (t *Timeline) ExpiredDays() int {
	if !t.now.After(t.end) {
		return 0
	}
	return datemath.DiffInDays(t.now, t.end)
}

// RemainingDays counts days left until the end, zero once it has passed.
func (t *Timeline) RemainingDays() int {
	if !t.now.Before(t.end) {
		return 0
	}
	return datemath.DiffInDays(t.end, t.now)
}

// DaysUntilThreshold counts days left until the warning starts.
func (t *Timeline) DaysUntilThreshold() int {
	if !t.now.Before(t.threshold) {
		return 0
	}
	return datemath.DiffInDays(t.threshold, t.now)
}
