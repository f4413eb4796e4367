package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/penwyp/go-expiry-bar/internal/presentation/layout"
)

const (
	soonestLimit = 5
	nameWidth    = 30
)

// SummaryFormatter prints how many entities sit in each phase and which
// ones run out first.
type SummaryFormatter struct {
	sizer *layout.Sizer
}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{sizer: layout.NewSizer(0)}
}

func (f *SummaryFormatter) Format(w io.Writer, rows []Row) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Expiry Summary Report\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(rows) == 0 {
		b.WriteString("No entities to summarize\n\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Reference Day: %s\n", formatDate(rows[0].Now))
	fmt.Fprintf(&b, "Entities: %d\n\n", len(rows))

	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Status]++
	}
	b.WriteString("Status Breakdown:\n")
	for _, status := range []string{"not_started", "safe", "expiring", "boundary", "expired"} {
		if counts[status] > 0 {
			fmt.Fprintf(&b, "  %-12s %d\n", status+":", counts[status])
		}
	}
	b.WriteString("\n")

	alive := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Status != "expired" && row.RemainingDays > 0 {
			alive = append(alive, row)
		}
	}
	sort.SliceStable(alive, func(i, j int) bool {
		return alive[i].RemainingDays < alive[j].RemainingDays
	})
	if len(alive) > soonestLimit {
		alive = alive[:soonestLimit]
	}

	if len(alive) > 0 {
		b.WriteString("Expiring Soonest:\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, row := range alive {
			name := f.sizer.PadString(f.sizer.Truncate(row.Name, nameWidth), nameWidth, true)
			fmt.Fprintf(&b, "  %s %4d days  (%s)\n", name, row.RemainingDays, formatDate(row.End))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
