package tariff

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

func band(min int64, max *int64, price string) Band {
	return Band{ConsumptionMin: min, ConsumptionMax: max, UnitPrice: decimal.RequireFromString(price)}
}

func TestValidateBandsAcceptsContiguousSet(t *testing.T) {
	err := ValidateBands([]Band{
		band(0, lo.ToPtr(int64(20)), "10.00"),
		band(21, lo.ToPtr(int64(50)), "2.50"),
		band(51, nil, "4.00"),
	})
	assert.NoError(t, err)
}

func TestValidateBandsAcceptsSingleUnboundedBand(t *testing.T) {
	err := ValidateBands([]Band{band(0, nil, "1.00")})
	assert.NoError(t, err)
}

func TestValidateBandsRejections(t *testing.T) {
	cases := map[string][]Band{
		"empty set": {},
		"not zero based": {
			band(5, lo.ToPtr(int64(20)), "10.00"),
		},
		"gap": {
			band(0, lo.ToPtr(int64(20)), "10.00"),
			band(25, lo.ToPtr(int64(50)), "2.50"),
		},
		"overlap": {
			band(0, lo.ToPtr(int64(20)), "10.00"),
			band(15, lo.ToPtr(int64(50)), "2.50"),
		},
		"max below min": {
			band(0, lo.ToPtr(int64(20)), "10.00"),
			band(21, lo.ToPtr(int64(10)), "2.50"),
		},
		"unbounded band not last": {
			band(0, nil, "10.00"),
			band(21, lo.ToPtr(int64(50)), "2.50"),
		},
		"negative price": {
			band(0, lo.ToPtr(int64(20)), "-1.00"),
		},
	}
	for name, bands := range cases {
		err := ValidateBands(bands)
		assert.Error(t, err, name)
		assert.True(t, ierr.IsValidation(err), name)
	}
}

func TestSortBandsDoesNotMutateInput(t *testing.T) {
	in := []Band{
		band(21, lo.ToPtr(int64(50)), "2.50"),
		band(0, lo.ToPtr(int64(20)), "10.00"),
	}
	out := SortBands(in)
	assert.Equal(t, int64(0), out[0].ConsumptionMin)
	assert.Equal(t, int64(21), in[0].ConsumptionMin)
}

func TestBandContains(t *testing.T) {
	b := band(21, lo.ToPtr(int64(50)), "2.50")
	assert.False(t, b.Contains(20))
	assert.True(t, b.Contains(21))
	assert.True(t, b.Contains(50))
	assert.False(t, b.Contains(51))

	open := band(51, nil, "4.00")
	assert.True(t, open.Contains(51))
	assert.True(t, open.Contains(1_000_000))
}

func TestBandUnits(t *testing.T) {
	assert.Equal(t, int64(30), band(21, lo.ToPtr(int64(50)), "2.50").Units())
	assert.Equal(t, int64(21), band(0, lo.ToPtr(int64(20)), "10.00").Units())
	assert.Equal(t, int64(0), band(51, nil, "4.00").Units())
}

func TestBandIsBase(t *testing.T) {
	assert.True(t, band(0, lo.ToPtr(int64(20)), "10.00").IsBase())
	assert.False(t, band(21, lo.ToPtr(int64(50)), "2.50").IsBase())
}
