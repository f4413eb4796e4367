package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoIntervalPattern   = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)
	shortIntervalPattern = regexp.MustCompile(`(\d+)([ymwdh])`)
)

// Interval is a calendar-relative span. Months and years follow calendar
// rules when applied, so "1 month" before March 31st lands on March 3rd in a
// non-leap year, the same normalisation time.AddDate performs.
type Interval struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// ParseInterval accepts ISO-8601 durations (P1M, P2W, P1Y2M10DT2H) and the
// shorthand form 20d, 2w3d, 1m, 1y where m means month.
func ParseInterval(s string) (Interval, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Interval{}, fmt.Errorf("%w: empty string", ErrInvalidInterval)
	}

	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "P") {
		return parseISOInterval(upper, s)
	}
	return parseShortInterval(strings.ToLower(trimmed), s)
}

// MustParseInterval is ParseInterval for compile-time constants.
func MustParseInterval(s string) Interval {
	iv, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return iv
}

func parseISOInterval(upper, raw string) (Interval, error) {
	m := isoIntervalPattern.FindStringSubmatch(upper)
	if m == nil || upper == "P" || strings.HasSuffix(upper, "T") {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}

	values := make([]int, 7)
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
		}
		values[i] = n
	}

	return Interval{
		Years:   values[0],
		Months:  values[1],
		Weeks:   values[2],
		Days:    values[3],
		Hours:   values[4],
		Minutes: values[5],
		Seconds: values[6],
	}, nil
}

func parseShortInterval(lower, raw string) (Interval, error) {
	matches := shortIntervalPattern.FindAllStringSubmatch(lower, -1)
	if len(matches) == 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}

	// Every character must belong to a number+unit pair
	consumed := 0
	for _, match := range matches {
		consumed += len(match[0])
	}
	if consumed != len(lower) {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}

	var iv Interval
	for _, match := range matches {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			return Interval{}, fmt.Errorf("%w: invalid number %s", ErrInvalidInterval, match[1])
		}

		switch match[2] {
		case "y":
			iv.Years += value
		case "m":
			iv.Months += value
		case "w":
			iv.Weeks += value
		case "d":
			iv.Days += value
		case "h":
			iv.Hours += value
		}
	}
	return iv, nil
}

// IsZero reports whether the interval spans nothing.
func (i Interval) IsZero() bool {
	return i == Interval{}
}

// AddTo shifts t forward by the interval.
func (i Interval) AddTo(t time.Time) time.Time {
	return i.shift(t, 1)
}

// SubFrom shifts t backward by the interval.
func (i Interval) SubFrom(t time.Time) time.Time {
	return i.shift(t, -1)
}

func (i Interval) shift(t time.Time, sign int) time.Time {
	shifted := t.AddDate(sign*i.Years, sign*i.Months, sign*(i.Weeks*7+i.Days))
	clock := time.Duration(i.Hours)*time.Hour +
		time.Duration(i.Minutes)*time.Minute +
		time.Duration(i.Seconds)*time.Second
	return shifted.Add(time.Duration(sign) * clock)
}

// String renders the interval in canonical ISO-8601 form.
func (i Interval) String() string {
	if i.IsZero() {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteString("P")
	writePart(&b, i.Years, "Y")
	writePart(&b, i.Months, "M")
	writePart(&b, i.Weeks, "W")
	writePart(&b, i.Days, "D")
	if i.Hours != 0 || i.Minutes != 0 || i.Seconds != 0 {
		b.WriteString("T")
		writePart(&b, i.Hours, "H")
		writePart(&b, i.Minutes, "M")
		writePart(&b, i.Seconds, "S")
	}
	return b.String()
}

func writePart(b *strings.Builder, n int, unit string) {
	if n != 0 {
		b.WriteString(strconv.Itoa(n))
		b.WriteString(unit)
	}
}
