// Package timeline tracks a time-bounded entity against a frozen reference
// day. It classifies the day into safe, expiring and expired phases, counts
// the days spent in each phase and turns those counts into bar segments.
//
// A Timeline is not safe for concurrent mutation.
package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-expiry-bar/internal/core/constants"
	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
	"github.com/penwyp/go-expiry-bar/internal/util"
)

var (
	defaultInterval   = datemath.MustParseInterval(constants.DefaultThresholdInterval)
	defaultSpanBefore = datemath.Interval{Months: constants.DefaultSpanBeforeMonths}
	defaultSpanAfter  = datemath.Interval{Months: constants.DefaultSpanAfterMonths}
)

// Timeline holds the four instants of an entity's lifespan. now is set once
// by New and never re-sampled.
type Timeline struct {
	now       time.Time
	start     time.Time
	end       time.Time
	threshold time.Time

	interval     datemath.Interval
	intervalText string

	// explicit threshold requested through SetThreshold, nil when derived
	override *time.Time
}

// Option configures a Timeline at construction.
type Option func(*options)

type options struct {
	now      time.Time
	start    any
	end      any
	interval string
}

// WithNow fixes the reference instant. It is truncated to the start of its day.
func WithNow(now time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStart sets the lifespan start; see SetStart for accepted values.
func WithStart(v any) Option {
	return func(o *options) { o.start = v }
}

// WithEnd sets the lifespan end; see SetEnd for accepted values.
func WithEnd(v any) Option {
	return func(o *options) { o.end = v }
}

// WithThresholdInterval sets the span before the end at which expiry warning starts.
func WithThresholdInterval(interval string) Option {
	return func(o *options) { o.interval = interval }
}

// New creates a Timeline. Unset fields take their defaults: start one month
// before today, end one month after and a one month threshold interval.
func New(opts ...Option) (*Timeline, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.now.IsZero() {
		o.now = util.GetTimeProvider().Now()
	}

	t := &Timeline{now: datemath.Today(o.now)}

	t.interval, t.intervalText = defaultInterval, constants.DefaultThresholdInterval
	if o.interval != "" {
		interval, err := datemath.ParseInterval(o.interval)
		if err != nil {
			return nil, err
		}
		t.interval, t.intervalText = interval, o.interval
	}

	var err error
	if t.start, err = t.resolve(o.start, t.defaultStart()); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if t.end, err = t.resolve(o.end, t.defaultEnd()); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	t.reconcileThreshold()

	util.LogDebugf("Timeline created: start=%s end=%s threshold=%s interval=%s",
		t.start.Format(time.DateOnly), t.end.Format(time.DateOnly),
		t.threshold.Format(time.DateOnly), t.intervalText)
	return t, nil
}

// SetStart moves the lifespan start. A nil value restores the default.
func (t *Timeline) SetStart(v any) error {
	start, err := t.resolve(v, t.defaultStart())
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	t.start = start
	t.reconcileThreshold()
	return nil
}

// SetEnd moves the lifespan end. A nil value restores the default. Any
// explicit threshold is dropped and the threshold is derived again.
func (t *Timeline) SetEnd(v any) error {
	end, err := t.resolve(v, t.defaultEnd())
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	t.end = end
	t.override = nil
	t.reconcileThreshold()
	return nil
}

// SetThresholdInterval replaces the threshold interval and derives the
// threshold again. An empty string keeps the current interval.
func (t *Timeline) SetThresholdInterval(interval string) error {
	if interval != "" {
		parsed, err := datemath.ParseInterval(interval)
		if err != nil {
			return err
		}
		t.interval, t.intervalText = parsed, interval
	}
	t.override = nil
	t.reconcileThreshold()
	return nil
}

// SetThreshold pins the threshold to an explicit date. A nil value goes back
// to deriving it as end minus the threshold interval. The result is clamped
// into [start, end].
func (t *Timeline) SetThreshold(v any) error {
	if v == nil {
		t.override = nil
		t.reconcileThreshold()
		return nil
	}

	threshold, err := datemath.Parse(v, t.now.Location(), t.now)
	if err != nil {
		return fmt.Errorf("threshold: %w", err)
	}
	t.override = &threshold
	t.reconcileThreshold()
	return nil
}

// SetThresholdAsPercentage places the threshold pct percent of the total
// lifespan before the end.
func (t *Timeline) SetThresholdAsPercentage(pct float64) error {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPercentage, pct)
	}
	days := int(math.Round(float64(t.TotalDays()) * pct / 100))
	return t.SetThreshold(datemath.SubDays(t.end, days))
}

// ParsePercentage reads values such as "20", "20%" or "20.02 %".
func ParsePercentage(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	pct, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercentage, s)
	}
	return pct, nil
}

// reconcileThreshold is the single place the threshold is computed. Every
// mutator calls it after updating its own field.
func (t *Timeline) reconcileThreshold() {
	derived := t.interval.SubFrom(t.end)

	threshold := derived
	if t.override != nil {
		threshold = *t.override
	}
	if threshold.After(t.end) {
		threshold = derived
		t.override = nil
	}
	if !threshold.After(t.start) {
		threshold = t.start
	}
	t.threshold = threshold
}

func (t *Timeline) resolve(v any, fallback time.Time) (time.Time, error) {
	if v == nil {
		return fallback, nil
	}
	return datemath.Parse(v, t.now.Location(), t.now)
}

func (t *Timeline) defaultStart() time.Time {
	return defaultSpanBefore.SubFrom(t.now)
}

func (t *Timeline) defaultEnd() time.Time {
	return defaultSpanAfter.AddTo(t.now)
}

// Now returns the frozen reference day.
func (t *Timeline) Now() time.Time { return t.now }

// Start returns the lifespan start.
func (t *Timeline) Start() time.Time { return t.start }

// End returns the lifespan end.
func (t *Timeline) End() time.Time { return t.end }

// Threshold returns the boundary between safe and expiring.
func (t *Timeline) Threshold() time.Time { return t.threshold }

// ThresholdInterval returns the interval the threshold is derived from.
func (t *Timeline) ThresholdInterval() datemath.Interval { return t.interval }

// HasExplicitThreshold reports whether the threshold was pinned with SetThreshold.
func (t *Timeline) HasExplicitThreshold() bool { return t.override != nil }
