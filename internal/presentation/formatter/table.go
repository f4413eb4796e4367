package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-expiry-bar/internal/presentation/layout"
)

type TableFormatter struct {
	headers []string
	sizer   *layout.Sizer
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Name", "Status", "Start", "End", "Threshold",
			"Total", "Left", "Safe %", "Expiring %", "Expired %",
		},
		sizer: layout.NewSizer(0),
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []Row) error {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			row.Status,
			formatDate(row.Start),
			formatDate(row.End),
			formatDate(row.Threshold),
			strconv.Itoa(row.TotalDays),
			strconv.Itoa(row.RemainingDays),
			FormatPercentage(row.SafePercentage),
			FormatPercentage(row.ExpiringPercentage),
			FormatPercentage(row.ExpiredPercentage),
		})
	}

	widths := f.calculateColumnWidths(cells)

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range cells {
		f.writeRow(&b, row, widths)
	}
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths sizes each column to its widest cell
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = f.sizer.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if vw := f.sizer.DisplayWidth(value); vw > widths[i] {
				widths[i] = vw
			}
		}
	}
	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow left-aligns the text columns and right-aligns the numbers
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		fmt.Fprintf(b, " %s │", f.sizer.PadString(value, widths[i], i < 5))
	}
	b.WriteString("\n")
}
