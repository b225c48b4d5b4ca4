package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/testutil"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type RatingServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	rating RatingService
}

func TestRatingService(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}

func (s *RatingServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.rating = NewRatingService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		TariffRepo: s.GetStores().TariffRepo,
		Publisher:  s.GetPublisher(),
	})
}

// createTariff persists a tariff with the given bands and returns its id.
func (s *RatingServiceTestSuite) createTariff(bands []tariff.Band) int64 {
	t, err := s.GetStores().TariffRepo.Create(s.GetContext(), &tariff.Tariff{
		Name:      "Tarifa domestica",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	})
	s.NoError(err)
	_, err = s.GetStores().TariffRepo.ReplaceBands(s.GetContext(), t.ID, bands)
	s.NoError(err)
	return t.ID
}

// standardBands is a three step schedule: a flat base up to 20 m3, a
// middle band at 2.50 per m3 and an open ended top band at 4.00 per m3.
func standardBands() []tariff.Band {
	return []tariff.Band{
		{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
		{ConsumptionMin: 21, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		{ConsumptionMin: 51, ConsumptionMax: nil, UnitPrice: decimal.RequireFromString("4.00")},
	}
}

func (s *RatingServiceTestSuite) rate(tariffID int64, consumption string) (decimal.Decimal, error) {
	return s.rating.RateConsumption(s.GetContext(), tariffID, decimal.RequireFromString(consumption))
}

func (s *RatingServiceTestSuite) TestBaseBandIsFlatCharge() {
	id := s.createTariff(standardBands())

	for _, consumption := range []string{"0", "1", "15", "20"} {
		total, err := s.rate(id, consumption)
		s.NoError(err)
		s.True(decimal.RequireFromString("10.00").Equal(total),
			"consumption %s should cost the flat base charge, got %s", consumption, total)
	}
}

func (s *RatingServiceTestSuite) TestMiddleBandPartialUse() {
	id := s.createTariff(standardBands())

	// 35 m3: flat 10.00 for the base, then 15 units (21..35) at 2.50.
	total, err := s.rate(id, "35")
	s.NoError(err)
	s.True(decimal.RequireFromString("47.50").Equal(total), "got %s", total)
}

func (s *RatingServiceTestSuite) TestTopUnboundedBand() {
	id := s.createTariff(standardBands())

	// 60 m3: 10.00 + 30*2.50 + 10*4.00 (units 51..60).
	total, err := s.rate(id, "60")
	s.NoError(err)
	s.True(decimal.RequireFromString("125.00").Equal(total), "got %s", total)
}

func (s *RatingServiceTestSuite) TestFractionalConsumptionTruncates() {
	id := s.createTariff(standardBands())

	whole, err := s.rate(id, "35")
	s.NoError(err)
	fractional, err := s.rate(id, "35.90")
	s.NoError(err)
	s.True(whole.Equal(fractional), "35.90 must rate like 35: %s vs %s", whole, fractional)
}

func (s *RatingServiceTestSuite) TestOverflowBeyondLastBoundedBand() {
	// No unbounded band: consumption past the last maximum is charged at
	// the last band's rate.
	id := s.createTariff([]tariff.Band{
		{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
		{ConsumptionMin: 21, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
	})

	// 60 m3: 10.00 + 30*2.50 + 10*2.50 excess.
	total, err := s.rate(id, "60")
	s.NoError(err)
	s.True(decimal.RequireFromString("110.00").Equal(total), "got %s", total)
}

func (s *RatingServiceTestSuite) TestMonotonicity() {
	id := s.createTariff(standardBands())

	prev := decimal.Zero
	for units := int64(0); units <= 70; units++ {
		total, err := s.rating.RateConsumption(s.GetContext(), id, decimal.NewFromInt(units))
		s.NoError(err)
		s.True(total.GreaterThanOrEqual(prev),
			"charge decreased from %s to %s at %d m3", prev, total, units)
		prev = total
	}
}

func (s *RatingServiceTestSuite) TestNegativeConsumptionRejected() {
	id := s.createTariff(standardBands())

	_, err := s.rate(id, "-1")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RatingServiceTestSuite) TestTariffWithoutBandsRejected() {
	t, err := s.GetStores().TariffRepo.Create(s.GetContext(), &tariff.Tariff{
		Name:      "Tarifa vacia",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	})
	s.NoError(err)

	_, err = s.rate(t.ID, "10")
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *RatingServiceTestSuite) TestUnknownTariff() {
	_, err := s.rate(9999, "10")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *RatingServiceTestSuite) TestDeterministicRating() {
	id := s.createTariff(standardBands())

	first, err := s.rate(id, "42")
	s.NoError(err)
	second, err := s.rate(id, "42")
	s.NoError(err)
	s.True(first.Equal(second))
}
