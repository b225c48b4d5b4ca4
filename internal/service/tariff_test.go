package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/testutil"
)

type TariffServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	tariffService TariffService
}

func TestTariffService(t *testing.T) {
	suite.Run(t, new(TariffServiceTestSuite))
}

func (s *TariffServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.tariffService = NewTariffService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		TariffRepo: s.GetStores().TariffRepo,
		Publisher:  s.GetPublisher(),
	})
}

func validBands() []dto.CreateBandRequest {
	return []dto.CreateBandRequest{
		{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
		{ConsumptionMin: 21, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		{ConsumptionMin: 51, ConsumptionMax: nil, UnitPrice: decimal.RequireFromString("4.00")},
	}
}

func (s *TariffServiceTestSuite) TestCreateTariffWithBands() {
	resp, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name:        "Tarifa domestica",
		Description: "Uso residencial",
		Bands:       validBands(),
	})
	s.NoError(err)
	s.NotZero(resp.Tariff.ID)
	s.Len(resp.Tariff.Bands, 3)

	fetched, err := s.tariffService.GetTariff(s.GetContext(), resp.Tariff.ID)
	s.NoError(err)
	s.Len(fetched.Tariff.Bands, 3)
	// Bands come back sorted by ascending minimum.
	s.Equal(int64(0), fetched.Tariff.Bands[0].ConsumptionMin)
	s.Equal(int64(51), fetched.Tariff.Bands[2].ConsumptionMin)
	s.Nil(fetched.Tariff.Bands[2].ConsumptionMax)
}

func (s *TariffServiceTestSuite) TestCreateTariffWithoutBands() {
	resp, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name: "Tarifa pendiente",
	})
	s.NoError(err)
	s.Empty(resp.Tariff.Bands)
}

func (s *TariffServiceTestSuite) TestCreateTariffRejectsInvalidBands() {
	cases := map[string][]dto.CreateBandRequest{
		"first band not zero based": {
			{ConsumptionMin: 5, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
		},
		"gap between bands": {
			{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
			{ConsumptionMin: 25, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		},
		"overlapping bands": {
			{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
			{ConsumptionMin: 15, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		},
		"max below min": {
			{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(-3)), UnitPrice: decimal.RequireFromString("10.00")},
		},
		"negative price": {
			{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("-1.00")},
		},
		"unbounded band not last": {
			{ConsumptionMin: 0, ConsumptionMax: nil, UnitPrice: decimal.RequireFromString("10.00")},
			{ConsumptionMin: 21, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		},
	}

	for name, bands := range cases {
		_, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
			Name:  "Tarifa invalida",
			Bands: bands,
		})
		s.Error(err, name)
		s.True(ierr.IsValidation(err), name)
	}
}

func (s *TariffServiceTestSuite) TestReplaceBands() {
	created, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name:  "Tarifa domestica",
		Bands: validBands(),
	})
	s.NoError(err)

	resp, err := s.tariffService.ReplaceBands(s.GetContext(), created.Tariff.ID, &dto.ReplaceBandsRequest{
		Bands: []dto.CreateBandRequest{
			{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(30)), UnitPrice: decimal.RequireFromString("12.00")},
			{ConsumptionMin: 31, ConsumptionMax: nil, UnitPrice: decimal.RequireFromString("3.00")},
		},
	})
	s.NoError(err)
	s.Len(resp.Tariff.Bands, 2)
	s.Equal(int64(30), *resp.Tariff.Bands[0].ConsumptionMax)
}

func (s *TariffServiceTestSuite) TestReplaceBandsRejectsInvalidSet() {
	created, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name:  "Tarifa domestica",
		Bands: validBands(),
	})
	s.NoError(err)

	_, err = s.tariffService.ReplaceBands(s.GetContext(), created.Tariff.ID, &dto.ReplaceBandsRequest{
		Bands: []dto.CreateBandRequest{
			{ConsumptionMin: 10, ConsumptionMax: lo.ToPtr(int64(30)), UnitPrice: decimal.RequireFromString("12.00")},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// The previous band set survives a failed replacement.
	fetched, err := s.tariffService.GetTariff(s.GetContext(), created.Tariff.ID)
	s.NoError(err)
	s.Len(fetched.Tariff.Bands, 3)
}

func (s *TariffServiceTestSuite) TestUpdateTariffMetadata() {
	created, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name:  "Tarifa domestica",
		Bands: validBands(),
	})
	s.NoError(err)

	updated, err := s.tariffService.UpdateTariff(s.GetContext(), created.Tariff.ID, &dto.UpdateTariffRequest{
		Name: "Tarifa residencial",
	})
	s.NoError(err)
	s.Equal("Tarifa residencial", updated.Tariff.Name)
}

func (s *TariffServiceTestSuite) TestDeleteTariff() {
	created, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{
		Name:  "Tarifa temporal",
		Bands: validBands(),
	})
	s.NoError(err)

	s.NoError(s.tariffService.DeleteTariff(s.GetContext(), created.Tariff.ID))

	_, err = s.tariffService.GetTariff(s.GetContext(), created.Tariff.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *TariffServiceTestSuite) TestListTariffs() {
	for _, name := range []string{"Tarifa A", "Tarifa B"} {
		_, err := s.tariffService.CreateTariff(s.GetContext(), &dto.CreateTariffRequest{Name: name})
		s.NoError(err)
	}

	resp, err := s.tariffService.ListTariffs(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)
}
