package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2026-08")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08", p.String())
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), p.Start())
}

func TestParsePeriodRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "2026", "08-2026", "2026/08", "2026-13", "2026-8"} {
		_, err := ParsePeriod(in)
		assert.Error(t, err, in)
		assert.True(t, ierr.IsValidation(err), in)
	}
}

func TestPeriodFromTime(t *testing.T) {
	at := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, Period("2026-08"), PeriodFromTime(at))
}
