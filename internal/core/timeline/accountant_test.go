package timeline

import (
	"testing"

	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayCounts(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		interval  string
		total     int
		lived     int
		safe      int
		expiring  int
		expired   int
		remaining int
	}{
		{
			name: "not yet started", start: 80, end: 120, interval: "P10D",
			total: 40, lived: 0, safe: 0, expiring: 0, expired: 0, remaining: 120,
		},
		{
			name: "alive and safe", start: -40, end: 80, interval: "P10D",
			total: 120, lived: 40, safe: 40, expiring: 0, expired: 0, remaining: 80,
		},
		{
			name: "alive and expiring", start: -80, end: 10, interval: "P20D",
			total: 90, lived: 80, safe: 70, expiring: 10, expired: 0, remaining: 10,
		},
		{
			name: "already expired", start: -80, end: -40, interval: "P10D",
			total: 80, lived: 40, safe: 30, expiring: 10, expired: 40, remaining: 0,
		},
		{
			name: "starts today", start: 0, end: 30, interval: "P10D",
			total: 30, lived: 0, safe: 0, expiring: 0, expired: 0, remaining: 30,
		},
		{
			name: "ends today", start: -30, end: 0, interval: "P10D",
			total: 30, lived: 30, safe: 20, expiring: 10, expired: 0, remaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTimeline(t, WithStart(day(tt.start)), WithEnd(day(tt.end)), WithThresholdInterval(tt.interval))

			assert.Equal(t, tt.total, tl.TotalDays(), "TotalDays")
			assert.Equal(t, tt.lived, tl.TotalLivedDays(), "TotalLivedDays")
			assert.Equal(t, tt.safe, tl.SafeDays(), "SafeDays")
			assert.Equal(t, tt.expiring, tl.ExpiringDays(), "ExpiringDays")
			assert.Equal(t, tt.expired, tl.ExpiredDays(), "ExpiredDays")
			assert.Equal(t, tt.remaining, tl.RemainingDays(), "RemainingDays")
		})
	}
}

func TestTotalDays_AlreadyExpiredExtendsToNow(t *testing.T) {
	tl := newTimeline(t)
	require.NoError(t, tl.SetStart("2013-01-01"))
	require.NoError(t, tl.SetEnd("2013-12-31"))

	start, err := datemath.Parse("2013-01-01", today.Location(), today)
	require.NoError(t, err)
	assert.Equal(t, datemath.DiffInDays(today, start), tl.TotalDays())
}

func TestDaysUntilThreshold(t *testing.T) {
	tl := newTimeline(t, WithStart(day(-10)), WithEnd(day(90)), WithThresholdInterval("P20D"))
	assert.Equal(t, 70, tl.DaysUntilThreshold())

	require.NoError(t, tl.SetEnd(day(10)))
	assert.Equal(t, 0, tl.DaysUntilThreshold())
}

func TestPhaseDaysSumToLivedPlusExpired(t *testing.T) {
	intervals := []string{"P1D", "P7D", "P13D", "P1M", "P3M"}

	for startOffset := -200; startOffset <= 50; startOffset += 17 {
		for length := 1; length <= 240; length += 23 {
			for _, interval := range intervals {
				tl := newTimeline(t,
					WithStart(day(startOffset)),
					WithEnd(day(startOffset+length)),
					WithThresholdInterval(interval))

				sum := tl.SafeDays() + tl.ExpiringDays() + tl.ExpiredDays()
				assert.Equal(t, tl.TotalLivedDays()+tl.ExpiredDays(), sum,
					"start=%d length=%d interval=%s", startOffset, length, interval)

				if tl.IsExpired() {
					assert.Equal(t, tl.TotalDays(), sum,
						"expired start=%d length=%d interval=%s", startOffset, length, interval)
				}
				assert.GreaterOrEqual(t, tl.TotalDays(), sum)
			}
		}
	}
}

func TestZeroDuration(t *testing.T) {
	for _, offset := range []int{-10, 0, 10} {
		tl := newTimeline(t, WithStart(day(offset)), WithEnd(day(offset)))

		if offset < 0 {
			// expired: the bar extends to now
			assert.Equal(t, 10, tl.TotalDays())
			continue
		}
		assert.Equal(t, 0, tl.TotalDays())
		assert.Equal(t, 0, tl.SafeDays())
		assert.Equal(t, 0, tl.ExpiringDays())
		assert.Equal(t, 0, tl.ExpiredDays())
		assert.Equal(t, Breakdown{}, tl.Percentages())
		assert.Empty(t, tl.Render())
	}
}
