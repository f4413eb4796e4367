package datemath

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse interprets value as an instant. Strings are parsed in loc; the relative
// words today, now, yesterday and tomorrow are resolved against ref.
func Parse(value any, loc *time.Location, ref time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: empty time", ErrInvalidDate)
		}
		return *v, nil
	case string:
		return parseString(v, loc, ref)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
}

func parseString(s string, loc *time.Location, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)

	switch strings.ToLower(trimmed) {
	case "":
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	case "now":
		return ref, nil
	case "today":
		return Today(ref), nil
	case "yesterday":
		return SubDays(Today(ref), 1), nil
	case "tomorrow":
		return AddDays(Today(ref), 1), nil
	}

	t, err := dateparse.ParseIn(trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
