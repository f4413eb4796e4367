package datemath

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Interval
		wantErr  bool
	}{
		{name: "iso month", input: "P1M", expected: Interval{Months: 1}},
		{name: "iso weeks", input: "P2W", expected: Interval{Weeks: 2}},
		{name: "iso days", input: "P20D", expected: Interval{Days: 20}},
		{name: "iso lowercase", input: "p13d", expected: Interval{Days: 13}},
		{name: "iso combined", input: "P1Y2M10DT2H30M", expected: Interval{Years: 1, Months: 2, Days: 10, Hours: 2, Minutes: 30}},
		{name: "iso time only", input: "PT36H", expected: Interval{Hours: 36}},
		{name: "iso zero", input: "P0D", expected: Interval{}},
		{name: "short days", input: "20d", expected: Interval{Days: 20}},
		{name: "short combined", input: "2w3d", expected: Interval{Weeks: 2, Days: 3}},
		{name: "short month", input: "1m", expected: Interval{Months: 1}},
		{name: "short year and hours", input: "1y12h", expected: Interval{Years: 1, Hours: 12}},
		{name: "empty", input: "", wantErr: true},
		{name: "bare P", input: "P", wantErr: true},
		{name: "dangling T", input: "P1DT", wantErr: true},
		{name: "wrong order", input: "P1D2M", wantErr: true},
		{name: "missing unit", input: "20", wantErr: true},
		{name: "unknown unit", input: "20x", wantErr: true},
		{name: "trailing junk", input: "2w3dfoo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInterval))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseInterval_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseInterval("bogus") })
	assert.NotPanics(t, func() { MustParseInterval("P1M") })
}

func TestInterval_Shift(t *testing.T) {
	base := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval Interval
		sub      time.Time
		add      time.Time
	}{
		{
			name:     "one month normalises overflow",
			interval: Interval{Months: 1},
			sub:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			add:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two weeks",
			interval: Interval{Weeks: 2},
			sub:      time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
			add:      time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "days and hours",
			interval: Interval{Days: 1, Hours: 6},
			sub:      time.Date(2024, 3, 29, 18, 0, 0, 0, time.UTC),
			add:      time.Date(2024, 4, 1, 6, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sub, tt.interval.SubFrom(base))
			assert.Equal(t, tt.add, tt.interval.AddTo(base))
		})
	}
}

func TestInterval_String(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"P1M", "P1M"},
		{"20d", "P20D"},
		{"2w3d", "P2W3D"},
		{"P1Y2M10DT2H30M", "P1Y2M10DT2H30M"},
		{"P0D", "PT0S"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParseInterval(tt.input).String())
		})
	}
}
