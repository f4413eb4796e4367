// Package datemath holds the calendar arithmetic used by timelines: parsing
// date-like values, shifting instants by calendar intervals and counting whole
// days between two instants.
package datemath

import (
	"errors"
	"time"
)

var (
	// ErrInvalidDate is returned when a value cannot be interpreted as a date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidInterval is returned when an interval string is malformed.
	ErrInvalidInterval = errors.New("invalid interval")
)

// Today returns the start of the calendar day containing t, in t's location.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t forward by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SubDays shifts t backward by n calendar days.
func SubDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// DiffInDays returns the absolute number of whole calendar days between a and b.
// Counting is done on civil dates so a DST transition never loses or gains a day.
func DiffInDays(a, b time.Time) int {
	if a.After(b) {
		a, b = b, a
	}
	b = b.In(a.Location())

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	days := int(time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC).
		Sub(time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	// Partial last day does not count
	if days > 0 && clockOffset(b) < clockOffset(a) {
		days--
	}
	return days
}

func clockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
