package formatter

import (
	"fmt"
	"io"
	"time"
)

// Segment is one coloured part of an entity's bar.
type Segment struct {
	Phase      string  `json:"phase"`
	Percentage float64 `json:"percentage"`
	Style      string  `json:"style"`
}

// Row is everything a formatter needs to show about one entity.
type Row struct {
	Name      string    `json:"name"`
	Now       time.Time `json:"now"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Threshold time.Time `json:"threshold"`
	Interval  string    `json:"threshold_interval"`
	Status    string    `json:"status"`

	TotalDays     int `json:"total_days"`
	LivedDays     int `json:"lived_days"`
	SafeDays      int `json:"safe_days"`
	ExpiringDays  int `json:"expiring_days"`
	ExpiredDays   int `json:"expired_days"`
	RemainingDays int `json:"remaining_days"`

	SafePercentage     float64   `json:"safe_percentage"`
	ExpiringPercentage float64   `json:"expiring_percentage"`
	ExpiredPercentage  float64   `json:"expired_percentage"`
	Segments           []Segment `json:"segments"`
}

// Formatter writes rows in one output format.
type Formatter interface {
	Format(w io.Writer, rows []Row) error
}

// Formats lists the accepted output format names.
var Formats = []string{"bar", "html", "table", "json", "csv", "summary"}

// New returns the formatter for name. barWidth only affects the bar format;
// zero picks a width from the terminal.
func New(name string, barWidth int) (Formatter, error) {
	switch name {
	case "", "bar":
		return NewBarFormatter(barWidth), nil
	case "html":
		return NewHTMLFormatter(), nil
	case "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %v)", name, Formats)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
