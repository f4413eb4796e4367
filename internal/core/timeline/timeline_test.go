package timeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func newTimeline(t *testing.T, opts ...Option) *Timeline {
	t.Helper()
	tl, err := New(append([]Option{WithNow(today)}, opts...)...)
	require.NoError(t, err)
	return tl
}

func TestNew_Defaults(t *testing.T) {
	tl := newTimeline(t)

	assert.Equal(t, today, tl.Now())
	assert.Equal(t, today.AddDate(0, -1, 0), tl.Start())
	assert.Equal(t, today.AddDate(0, 1, 0), tl.End())
	assert.Equal(t, datemath.Interval{Months: 1}, tl.ThresholdInterval())
	// end minus one month lands back on today
	assert.Equal(t, today, tl.Threshold())
	assert.False(t, tl.HasExplicitThreshold())

	assert.True(t, tl.IsAlive())
	assert.False(t, tl.IsExpired())
}

func TestNew_NowIsTruncatedToDay(t *testing.T) {
	tl, err := New(WithNow(time.Date(2024, 6, 15, 17, 45, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, today, tl.Now())
}

func TestNew_NowIsFrozen(t *testing.T) {
	tl, err := New()
	require.NoError(t, err)

	first := tl.Now()
	time.Sleep(time.Millisecond)
	assert.Equal(t, first, tl.Now())
}

func TestNew_WithValues(t *testing.T) {
	tl := newTimeline(t,
		WithStart(day(-60)),
		WithEnd(day(40)),
		WithThresholdInterval("P20D"))

	assert.Equal(t, day(-60), tl.Start())
	assert.Equal(t, day(40), tl.End())
	assert.Equal(t, day(20), tl.Threshold())
	assert.Equal(t, 100, tl.TotalDays())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "bad start", opts: []Option{WithStart("soon")}, wantErr: ErrInvalidDate},
		{name: "bad end", opts: []Option{WithEnd(12)}, wantErr: ErrInvalidDate},
		{name: "bad interval", opts: []Option{WithThresholdInterval("fortnight")}, wantErr: ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(append([]Option{WithNow(today)}, tt.opts...)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSetDates_FromStrings(t *testing.T) {
	tl := newTimeline(t)

	require.NoError(t, tl.SetStart("2012-02-03"))
	require.NoError(t, tl.SetEnd("2020-02-20"))

	assert.Equal(t, "2012-02-03", tl.Start().Format(time.DateOnly))
	assert.Equal(t, "2020-02-20", tl.End().Format(time.DateOnly))
}

func TestSetStart_NilRestoresDefault(t *testing.T) {
	tl := newTimeline(t)

	require.NoError(t, tl.SetStart(day(-200)))
	require.NoError(t, tl.SetStart(nil))
	assert.Equal(t, today.AddDate(0, -1, 0), tl.Start())
}

func TestSetEnd_NilRestoresDefault(t *testing.T) {
	tl := newTimeline(t)

	require.NoError(t, tl.SetEnd(day(200)))
	require.NoError(t, tl.SetEnd(nil))
	assert.Equal(t, today.AddDate(0, 1, 0), tl.End())
}

func TestSetters_AreAllOrNothing(t *testing.T) {
	tl := newTimeline(t, WithStart(day(-40)), WithEnd(day(40)), WithThresholdInterval("P10D"))
	before := tl.Snapshot()

	assert.ErrorIs(t, tl.SetStart("garbage"), ErrInvalidDate)
	assert.ErrorIs(t, tl.SetEnd("2024-13-45"), ErrInvalidDate)
	assert.ErrorIs(t, tl.SetThreshold(struct{}{}), ErrInvalidDate)
	assert.ErrorIs(t, tl.SetThresholdInterval("P1X"), ErrInvalidInterval)

	assert.Equal(t, before, tl.Snapshot())
}

func TestThreshold_FollowsEnd(t *testing.T) {
	tl := newTimeline(t)
	require.NoError(t, tl.SetThresholdInterval("P2W"))

	// expires next week, threshold was a week ago
	require.NoError(t, tl.SetEnd(day(7)))
	assert.Equal(t, day(-7), tl.Threshold())
	assert.True(t, tl.IsExpiring())
	assert.True(t, tl.IsAlive())
	assert.False(t, tl.IsExpired())

	// expires next month
	require.NoError(t, tl.SetEnd(today.AddDate(0, 1, 0)))
	assert.Equal(t, today.AddDate(0, 1, -14), tl.Threshold())
	assert.False(t, tl.IsExpiring())
	assert.True(t, tl.IsAlive())
	assert.False(t, tl.IsExpired())

	// expired a month ago: end minus two weeks falls before start and is clamped
	require.NoError(t, tl.SetEnd(today.AddDate(0, -1, 0)))
	assert.Equal(t, tl.Start(), tl.Threshold())
	assert.False(t, tl.IsExpiring())
	assert.False(t, tl.IsAlive())
	assert.True(t, tl.IsExpired())
}

func TestThreshold_RecomputedOnMutation(t *testing.T) {
	tl := newTimeline(t)

	require.NoError(t, tl.SetStart(day(-80)))
	require.NoError(t, tl.SetEnd(day(80)))
	assert.Equal(t, day(80).AddDate(0, -1, 0), tl.Threshold())

	require.NoError(t, tl.SetEnd(day(120)))
	assert.Equal(t, day(120).AddDate(0, -1, 0), tl.Threshold())

	oldThreshold := tl.Threshold()
	require.NoError(t, tl.SetThresholdInterval("P80D"))
	assert.NotEqual(t, oldThreshold, tl.Threshold())
	assert.Equal(t, day(40), tl.Threshold())

	require.NoError(t, tl.SetThreshold(day(100)))
	assert.Equal(t, day(100), tl.Threshold())
	assert.True(t, tl.HasExplicitThreshold())
}

func TestThreshold_ExplicitSurvivesStartButNotEnd(t *testing.T) {
	tl := newTimeline(t, WithStart(day(-40)), WithEnd(day(40)), WithThresholdInterval("P10D"))

	require.NoError(t, tl.SetThreshold(day(5)))
	require.NoError(t, tl.SetStart(day(-50)))
	assert.Equal(t, day(5), tl.Threshold())

	require.NoError(t, tl.SetEnd(day(60)))
	assert.False(t, tl.HasExplicitThreshold())
	assert.Equal(t, day(50), tl.Threshold())

	require.NoError(t, tl.SetThreshold(day(5)))
	require.NoError(t, tl.SetThresholdInterval(""))
	assert.False(t, tl.HasExplicitThreshold())
	assert.Equal(t, day(50), tl.Threshold())
}

func TestThreshold_Clamping(t *testing.T) {
	tl := newTimeline(t, WithStart(day(-40)), WithEnd(day(40)), WithThresholdInterval("P10D"))

	// before the start collapses to start
	require.NoError(t, tl.SetThreshold(day(-50)))
	assert.Equal(t, day(-40), tl.Threshold())

	// exactly on the start also collapses to start
	require.NoError(t, tl.SetThreshold(day(-40)))
	assert.Equal(t, day(-40), tl.Threshold())

	// after the end collapses to end minus interval
	require.NoError(t, tl.SetThreshold(day(50)))
	assert.Equal(t, day(30), tl.Threshold())
	assert.False(t, tl.HasExplicitThreshold())
	assert.False(t, tl.Snapshot().ExplicitThreshold)

	// exactly on the end is kept
	require.NoError(t, tl.SetThreshold(day(40)))
	assert.Equal(t, day(40), tl.Threshold())

	// nil goes back to deriving
	require.NoError(t, tl.SetThreshold(nil))
	assert.Equal(t, day(30), tl.Threshold())
	assert.False(t, tl.HasExplicitThreshold())
}

func TestThreshold_ClampedWhenStartMovesPastIt(t *testing.T) {
	tl := newTimeline(t, WithStart(day(-40)), WithEnd(day(40)), WithThresholdInterval("P10D"))
	require.Equal(t, day(30), tl.Threshold())

	require.NoError(t, tl.SetStart(day(35)))
	assert.Equal(t, day(35), tl.Threshold())

	require.NoError(t, tl.SetStart(day(-40)))
	assert.Equal(t, day(30), tl.Threshold())
}

func TestSetThresholdAsPercentage(t *testing.T) {
	tests := []struct {
		name     string
		span     int
		pct      float64
		expected time.Time
	}{
		{name: "integer", span: 50, pct: 20, expected: day(30)},
		{name: "float rounds to whole days", span: 50, pct: 20.02, expected: day(30)},
		{name: "longer interval", span: 500, pct: 20, expected: day(300)},
		{name: "zero percent pins to end", span: 50, pct: 0, expected: day(50)},
		{name: "hundred percent pins to start", span: 50, pct: 100, expected: day(-50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTimeline(t, WithStart(day(-tt.span)), WithEnd(day(tt.span)))
			require.NoError(t, tl.SetThresholdAsPercentage(tt.pct))
			assert.Equal(t, tt.expected, tl.Threshold())
		})
	}
}

func TestSetThresholdAsPercentage_NonFinite(t *testing.T) {
	for _, pct := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		tl := newTimeline(t, WithStart(day(-50)), WithEnd(day(50)), WithThresholdInterval("P10D"))

		err := tl.SetThresholdAsPercentage(pct)
		assert.ErrorIs(t, err, ErrInvalidPercentage, "pct=%v", pct)
		assert.Equal(t, day(40), tl.Threshold())
		assert.False(t, tl.HasExplicitThreshold())
	}
}

func TestSetThresholdAsPercentage_JustInitialized(t *testing.T) {
	tl := newTimeline(t)
	require.NoError(t, tl.SetThresholdAsPercentage(30))
	assert.False(t, tl.Threshold().IsZero())
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "20", expected: 20},
		{input: "20%", expected: 20},
		{input: " 20.02 % ", expected: 20.02},
		{input: "0", expected: 0},
		{input: "twenty", wantErr: true},
		{input: "%", wantErr: true},
		{input: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePercentage(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPercentage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
