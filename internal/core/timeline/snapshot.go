package timeline

import "time"

// Snapshot is a frozen copy of every value derived from a Timeline.
type Snapshot struct {
	Now               time.Time `json:"now"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	Threshold         time.Time `json:"threshold"`
	ThresholdInterval string    `json:"threshold_interval"`
	ExplicitThreshold bool      `json:"explicit_threshold"`

	Status     Status `json:"status"`
	IsAlive    bool   `json:"is_alive"`
	IsSafe     bool   `json:"is_safe"`
	IsExpiring bool   `json:"is_expiring"`
	IsExpired  bool   `json:"is_expired"`

	TotalDays          int `json:"total_days"`
	LivedDays          int `json:"lived_days"`
	SafeDays           int `json:"safe_days"`
	ExpiringDays       int `json:"expiring_days"`
	ExpiredDays        int `json:"expired_days"`
	RemainingDays      int `json:"remaining_days"`
	DaysUntilThreshold int `json:"days_until_threshold"`

	Percentages Breakdown `json:"percentages"`
	Segments    []Segment `json:"segments"`
}

// Snapshot evaluates all queries against the current state.
func (t *Timeline) Snapshot() Snapshot {
	return Snapshot{
		Now:                t.now,
		Start:              t.start,
		End:                t.end,
		Threshold:          t.threshold,
		ThresholdInterval:  t.interval.String(),
		ExplicitThreshold:  t.HasExplicitThreshold(),
		Status:             t.Status(),
		IsAlive:            t.IsAlive(),
		IsSafe:             t.IsSafe(),
		IsExpiring:         t.IsExpiring(),
		IsExpired:          t.IsExpired(),
		TotalDays:          t.TotalDays(),
		LivedDays:          t.TotalLivedDays(),
		SafeDays:           t.SafeDays(),
		ExpiringDays:       t.ExpiringDays(),
		ExpiredDays:        t.ExpiredDays(),
		RemainingDays:      t.RemainingDays(),
		DaysUntilThreshold: t.DaysUntilThreshold(),
		Percentages:        t.Percentages(),
		Segments:           t.Render(),
	}
}
