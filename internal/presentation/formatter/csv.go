package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	headers := []string{
		"Name", "Status", "Start", "End", "Threshold", "Interval",
		"Total Days", "Safe Days", "Expiring Days", "Expired Days", "Remaining Days",
		"Safe %", "Expiring %", "Expired %",
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.Status,
			formatDate(row.Start),
			formatDate(row.End),
			formatDate(row.Threshold),
			row.Interval,
			strconv.Itoa(row.TotalDays),
			strconv.Itoa(row.SafeDays),
			strconv.Itoa(row.ExpiringDays),
			strconv.Itoa(row.ExpiredDays),
			strconv.Itoa(row.RemainingDays),
			strconv.FormatFloat(row.SafePercentage, 'f', 2, 64),
			strconv.FormatFloat(row.ExpiringPercentage, 'f', 2, 64),
			strconv.FormatFloat(row.ExpiredPercentage, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
