package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entry describes one entity of a batch file. Dates and the interval are
// kept as written; the timeline parses them against the run's reference day.
type Entry struct {
	Name                string   `json:"name" yaml:"name" validate:"required"`
	Start               string   `json:"start,omitempty" yaml:"start,omitempty"`
	End                 string   `json:"end,omitempty" yaml:"end,omitempty"`
	ThresholdInterval   string   `json:"threshold_interval,omitempty" yaml:"threshold_interval,omitempty"`
	Threshold           string   `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	ThresholdPercentage *float64 `json:"threshold_percentage,omitempty" yaml:"threshold_percentage,omitempty" validate:"omitempty,excluded_with=Threshold,gte=0,lte=100"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrDuplicateName is returned when two entries of one batch share a name.
var ErrDuplicateName = errors.New("duplicate entry name")

// Validate checks the entry's field rules.
func (e Entry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("entry %q: %s", e.Name, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// ValidateEntries validates every entry and rejects duplicate names.
func ValidateEntries(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
