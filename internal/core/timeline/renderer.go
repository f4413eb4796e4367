package timeline

import (
	"math"

	"github.com/penwyp/go-expiry-bar/internal/core/constants"
)

// Phase tags a bar segment.
type Phase string

const (
	PhaseSafe     Phase = "safe"
	PhaseExpiring Phase = "expiring"
	PhaseExpired  Phase = "expired"
)

// Style is the colour class of a segment.
type Style string

const (
	StyleSuccess Style = "success"
	StyleWarning Style = "warning"
	StyleDanger  Style = "danger"
)

// Segment is one coloured portion of the bar.
type Segment struct {
	Phase      Phase   `json:"phase"`
	Percentage float64 `json:"percentage"`
	Style      Style   `json:"style"`
}

// Breakdown holds the share of the bar taken by each phase.
type Breakdown struct {
	Safe     float64 `json:"safe"`
	Expiring float64 `json:"expiring"`
	Expired  float64 `json:"expired"`
}

// Total sums the three shares.
func (b Breakdown) Total() float64 {
	return b.Safe + b.Expiring + b.Expired
}

// Percentages converts day counts into bar shares. Any rounding overshoot
// past 100 is taken off the expired share, or off the expiring share when
// there is nothing expired to take it from. A zero-length lifespan yields
// all zeros.
func (t *Timeline) Percentages() Breakdown {
	total := t.TotalDays()
	if total == 0 {
		return Breakdown{}
	}

	b := Breakdown{
		Safe:     percentOf(t.SafeDays(), total),
		Expiring: percentOf(t.ExpiringDays(), total),
		Expired:  percentOf(t.ExpiredDays(), total),
	}
	if roundTo(b.Total(), constants.PercentagePrecision) > 100 {
		b.Expired = math.Max(0, roundTo(100-(b.Safe+b.Expiring), constants.PercentagePrecision))
	}
	// on the end day itself nothing has expired yet, so expiring gives way
	if roundTo(b.Total(), constants.PercentagePrecision) > 100 {
		b.Expiring = math.Max(0, roundTo(100-(b.Safe+b.Expired), constants.PercentagePrecision))
	}
	return b
}

// Render lists the non-empty segments in safe, expiring, expired order.
func (t *Timeline) Render() []Segment {
	b := t.Percentages()

	segments := make([]Segment, 0, 3)
	for _, s := range []Segment{
		{Phase: PhaseSafe, Percentage: b.Safe, Style: StyleSuccess},
		{Phase: PhaseExpiring, Percentage: b.Expiring, Style: StyleWarning},
		{Phase: PhaseExpired, Percentage: b.Expired, Style: StyleDanger},
	} {
		if s.Percentage != 0 {
			segments = append(segments, s)
		}
	}
	return segments
}

func percentOf(days, total int) float64 {
	return roundTo(float64(days)/float64(total)*100, constants.PercentagePrecision)
}

// roundTo rounds half away from zero.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
