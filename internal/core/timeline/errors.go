package timeline

import (
	"errors"

	"github.com/penwyp/go-expiry-bar/internal/core/datemath"
)

var (
	// ErrInvalidDate is returned by setters given a value that is not a date.
	ErrInvalidDate = datemath.ErrInvalidDate
	// ErrInvalidInterval is returned for a malformed threshold interval.
	ErrInvalidInterval = datemath.ErrInvalidInterval
	// ErrInvalidPercentage is returned when a percentage string cannot be read.
	ErrInvalidPercentage = errors.New("invalid percentage")
)
