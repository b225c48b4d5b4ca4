package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/testutil"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type ReadingServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	readingService ReadingService
	testData       struct {
		customer *customer.Customer
		meter    *meter.Meter
		route    *route.Route
	}
}

func TestReadingService(t *testing.T) {
	suite.Run(t, new(ReadingServiceTestSuite))
}

func (s *ReadingServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.readingService = NewReadingService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CustomerRepo: s.GetStores().CustomerRepo,
		MeterRepo:    s.GetStores().MeterRepo,
		ReadingRepo:  s.GetStores().ReadingRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		RouteRepo:    s.GetStores().RouteRepo,
		Publisher:    s.GetPublisher(),
	})
	s.setupTestData()
}

func (s *ReadingServiceTestSuite) setupTestData() {
	ctx := s.GetContext()

	rt, err := s.GetStores().RouteRepo.Create(ctx, &route.Route{
		Name:      "Ruta Centro",
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	s.testData.route = rt

	c, err := s.GetStores().CustomerRepo.Create(ctx, &customer.Customer{
		Name:      "Juan",
		RouteID:   lo.ToPtr(rt.ID),
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	s.testData.customer = c

	m, err := s.GetStores().MeterRepo.Create(ctx, &meter.Meter{
		CustomerID:   c.ID,
		SerialNumber: "MED-001",
		BaseModel:    types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	s.testData.meter = m
}

func (s *ReadingServiceTestSuite) createReading(period, consumption string) (*dto.ReadingResponse, error) {
	return s.readingService.CreateReading(s.GetContext(), &dto.CreateReadingRequest{
		MeterID:     s.testData.meter.ID,
		Consumption: decimal.RequireFromString(consumption),
		Period:      period,
	})
}

func (s *ReadingServiceTestSuite) TestCreateReading() {
	resp, err := s.createReading("2026-08", "35.5")
	s.NoError(err)
	s.NotZero(resp.Reading.ID)
	s.Equal("2026-08", resp.Reading.Period.String())
	// The route falls back to the customer's assignment.
	s.NotNil(resp.Reading.RouteID)
	s.Equal(s.testData.route.ID, *resp.Reading.RouteID)
}

func (s *ReadingServiceTestSuite) TestDuplicatePeriodRejected() {
	_, err := s.createReading("2026-08", "35")
	s.NoError(err)

	_, err = s.createReading("2026-08", "40")
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))

	// A different period for the same meter is fine.
	_, err = s.createReading("2026-09", "40")
	s.NoError(err)
}

func (s *ReadingServiceTestSuite) TestInvalidPeriodRejected() {
	for _, period := range []string{"08-2026", "2026/08", "2026-13", "2026-00", "202608"} {
		_, err := s.createReading(period, "35")
		s.Error(err, period)
		s.True(ierr.IsValidation(err), period)
	}
}

func (s *ReadingServiceTestSuite) TestNegativeConsumptionRejected() {
	_, err := s.createReading("2026-08", "-5")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ReadingServiceTestSuite) TestUnknownMeterRejected() {
	_, err := s.readingService.CreateReading(s.GetContext(), &dto.CreateReadingRequest{
		MeterID:     9999,
		Consumption: decimal.RequireFromString("10"),
		Period:      "2026-08",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ReadingServiceTestSuite) billReading(readingID int64) {
	amount := decimal.RequireFromString("47.50")
	issue := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.GetStores().InvoiceRepo.Create(s.GetContext(), &invoice.Invoice{
		ReadingID:          readingID,
		CustomerID:         s.testData.customer.ID,
		TariffID:           1,
		IssueDate:          issue,
		DueDate:            issue.AddDate(0, 0, 30),
		Total:              amount,
		OutstandingBalance: amount,
		Status:             types.InvoiceStatusPending,
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	})
	s.NoError(err)
}

func (s *ReadingServiceTestSuite) TestBilledReadingIsImmutable() {
	created, err := s.createReading("2026-08", "35")
	s.NoError(err)
	s.billReading(created.Reading.ID)

	_, err = s.readingService.UpdateReading(s.GetContext(), created.Reading.ID, &dto.UpdateReadingRequest{
		Consumption: lo.ToPtr(decimal.RequireFromString("40")),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	err = s.readingService.DeleteReading(s.GetContext(), created.Reading.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ReadingServiceTestSuite) TestUnbilledReadingCanChange() {
	created, err := s.createReading("2026-08", "35")
	s.NoError(err)

	updated, err := s.readingService.UpdateReading(s.GetContext(), created.Reading.ID, &dto.UpdateReadingRequest{
		Consumption: lo.ToPtr(decimal.RequireFromString("40")),
	})
	s.NoError(err)
	s.True(decimal.RequireFromString("40").Equal(updated.Reading.Consumption))

	s.NoError(s.readingService.DeleteReading(s.GetContext(), created.Reading.ID))
}

func (s *ReadingServiceTestSuite) TestListByPeriod() {
	_, err := s.createReading("2026-08", "35")
	s.NoError(err)
	_, err = s.createReading("2026-09", "20")
	s.NoError(err)

	resp, err := s.readingService.ListReadingsByPeriod(s.GetContext(), "2026-08")
	s.NoError(err)
	s.Equal(1, resp.Total)
}
