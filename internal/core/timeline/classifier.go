package timeline

// Status names the phase the reference day falls into.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusSafe       Status = "safe"
	StatusExpiring   Status = "expiring"
	StatusExpired    Status = "expired"
	// StatusBoundary is reported when now sits exactly on the threshold or
	// the end, where none of the strict predicates holds.
	StatusBoundary Status = "boundary"
)

// IsAlive reports whether the end has not been reached yet.
func (t *Timeline) IsAlive() bool {
	return t.now.Before(t.end)
}

// IsSafe reports whether now is before both the threshold and the end.
func (t *Timeline) IsSafe() bool {
	return t.now.Before(t.threshold) && t.now.Before(t.end)
}

// IsExpiring reports whether now is strictly between the threshold and the end.
func (t *Timeline) IsExpiring() bool {
	return t.now.After(t.threshold) && t.now.Before(t.end)
}

// IsExpired reports whether now is strictly after the end.
func (t *Timeline) IsExpired() bool {
	return t.now.After(t.end)
}

// Status folds the predicates into a single value.
func (t *Timeline) Status() Status {
	switch {
	case t.now.Before(t.start):
		return StatusNotStarted
	case t.IsSafe():
		return StatusSafe
	case t.IsExpiring():
		return StatusExpiring
	case t.IsExpired():
		return StatusExpired
	default:
		return StatusBoundary
	}
}
