package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HTMLFormatter prints a Bootstrap 3 progress container per row.
type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

func (f *HTMLFormatter) Format(w io.Writer, rows []Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, RenderHTML(row.Segments)); err != nil {
			return err
		}
	}
	return nil
}

// RenderHTML builds the progress markup for segments. An empty list yields
// an empty container.
func RenderHTML(segments []Segment) string {
	var b strings.Builder
	b.WriteString(`<div class="progress">`)
	for _, s := range segments {
		pct := FormatPercentage(s.Percentage)
		b.WriteString(`<div class="progress-bar progress-bar-`)
		b.WriteString(s.Style)
		b.WriteString(`" style="width: `)
		b.WriteString(pct)
		b.WriteString(`%"><span class="sr-only">`)
		b.WriteString(pct)
		b.WriteString(`%</span></div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// FormatPercentage prints the shortest form: 10, 82.42, 3.3.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
