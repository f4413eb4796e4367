package formatter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-expiry-bar/internal/presentation/layout"
)

const (
	filledCell = "█"
	emptyCell  = "░"
)

var segmentStyles = map[string]lipgloss.Style{
	"success": lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	"danger":  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// BarFormatter draws one coloured terminal bar per row.
type BarFormatter struct {
	width int
	sizer *layout.Sizer
}

// NewBarFormatter creates a bar formatter. width is the number of cells of
// the bar itself; zero sizes it from the terminal.
func NewBarFormatter(width int) *BarFormatter {
	return &BarFormatter{width: width, sizer: layout.NewSizer(0)}
}

func (f *BarFormatter) Format(w io.Writer, rows []Row) error {
	labelWidth := 0
	for _, row := range rows {
		if lw := f.sizer.DisplayWidth(row.Name); lw > labelWidth {
			labelWidth = lw
		}
	}

	width := f.width
	if width <= 0 {
		width = f.sizer.BarWidth(labelWidth)
	}

	for _, row := range rows {
		line := fmt.Sprintf("[%s] %s", drawBar(row.Segments, width), describe(row))
		if labelWidth > 0 {
			line = labelStyle.Render(f.sizer.PadString(row.Name, labelWidth, true)) + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// drawBar fills width cells proportionally to the segments. The cells of
// each segment are rounded; the last segment is trimmed so the bar never
// overflows.
func drawBar(segments []Segment, width int) string {
	var b strings.Builder
	used := 0
	for _, s := range segments {
		cells := int(math.Round(s.Percentage / 100 * float64(width)))
		if cells > width-used {
			cells = width - used
		}
		if cells <= 0 {
			continue
		}
		b.WriteString(segmentStyles[s.Style].Render(strings.Repeat(filledCell, cells)))
		used += cells
	}
	if used < width {
		b.WriteString(emptyStyle.Render(strings.Repeat(emptyCell, width-used)))
	}
	return b.String()
}

func describe(row Row) string {
	switch row.Status {
	case "not_started":
		return fmt.Sprintf("not started, starts %s", formatDate(row.Start))
	case "safe":
		return fmt.Sprintf("safe, %d days left", row.RemainingDays)
	case "expiring":
		return fmt.Sprintf("expiring, %d days left", row.RemainingDays)
	case "expired":
		return fmt.Sprintf("expired %d days ago", row.ExpiredDays)
	default:
		return fmt.Sprintf("%s, ends %s", row.Status, formatDate(row.End))
	}
}
