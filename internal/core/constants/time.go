package constants

const (
	// DefaultThresholdInterval is how long before the end an entity starts expiring
	DefaultThresholdInterval = "P1M"

	// Default lifespan around the reference day when start or end is not given
	DefaultSpanBeforeMonths = 1
	DefaultSpanAfterMonths  = 1

	// Percentages are rounded to this many decimal places
	PercentagePrecision = 2
)
