package formatter

import "time"

var refDay = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func sampleRows() []Row {
	return []Row{
		{
			Name:               "api-cert",
			Now:                refDay,
			Start:              refDay.AddDate(0, 0, -90),
			End:                refDay.AddDate(0, 0, 10),
			Threshold:          refDay.AddDate(0, 0, -10),
			Interval:           "P20D",
			Status:             "expiring",
			TotalDays:          100,
			LivedDays:          90,
			SafeDays:           80,
			ExpiringDays:       10,
			RemainingDays:      10,
			SafePercentage:     80,
			ExpiringPercentage: 10,
			Segments: []Segment{
				{Phase: "safe", Percentage: 80, Style: "success"},
				{Phase: "expiring", Percentage: 10, Style: "warning"},
			},
		},
		{
			Name:               "old-domain",
			Now:                refDay,
			Start:              refDay.AddDate(0, 0, -91),
			End:                refDay.AddDate(0, 0, -3),
			Threshold:          refDay.AddDate(0, 0, -16),
			Interval:           "P13D",
			Status:             "expired",
			TotalDays:          91,
			LivedDays:          88,
			SafeDays:           75,
			ExpiringDays:       13,
			ExpiredDays:        3,
			SafePercentage:     82.42,
			ExpiringPercentage: 14.29,
			ExpiredPercentage:  3.29,
			Segments: []Segment{
				{Phase: "safe", Percentage: 82.42, Style: "success"},
				{Phase: "expiring", Percentage: 14.29, Style: "warning"},
				{Phase: "expired", Percentage: 3.29, Style: "danger"},
			},
		},
		{
			Name:          "future-plan",
			Now:           refDay,
			Start:         refDay.AddDate(0, 0, 10),
			End:           refDay.AddDate(0, 0, 110),
			Threshold:     refDay.AddDate(0, 0, 90),
			Interval:      "P20D",
			Status:        "not_started",
			TotalDays:     100,
			RemainingDays: 110,
			Segments:      []Segment{},
		},
	}
}
