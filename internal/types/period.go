package types

import (
	"time"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// Period identifies a billing month in YYYY-MM form.
type Period string

const periodLayout = "2006-01"

// ParsePeriod validates the YYYY-MM form and returns the period.
func ParsePeriod(s string) (Period, error) {
	if _, err := time.Parse(periodLayout, s); err != nil {
		return "", ierr.WithError(err).
			WithHint("Period must be in YYYY-MM format").
			WithReportableDetails(map[string]interface{}{
				"periodo": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return Period(s), nil
}

func (p Period) String() string {
	return string(p)
}

// Validate reports whether the period is well formed.
func (p Period) Validate() error {
	_, err := ParsePeriod(string(p))
	return err
}

// Start returns midnight UTC on the first day of the period.
func (p Period) Start() time.Time {
	t, _ := time.Parse(periodLayout, string(p))
	return t
}

// PeriodFromTime returns the period containing t.
func PeriodFromTime(t time.Time) Period {
	return Period(t.UTC().Format(periodLayout))
}
