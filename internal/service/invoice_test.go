package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/testutil"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type InvoiceServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	invoiceService InvoiceService
	testData       struct {
		tariffID int64
		customer *customer.Customer
		meter    *meter.Meter
		reading  *reading.Reading
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.invoiceService = NewInvoiceService(s.serviceParams())
	s.setupTestData()
}

func (s *InvoiceServiceTestSuite) serviceParams() ServiceParams {
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		TariffRepo:   s.GetStores().TariffRepo,
		CustomerRepo: s.GetStores().CustomerRepo,
		MeterRepo:    s.GetStores().MeterRepo,
		ReadingRepo:  s.GetStores().ReadingRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		PaymentRepo:  s.GetStores().PaymentRepo,
		RouteRepo:    s.GetStores().RouteRepo,
		Publisher:    s.GetPublisher(),
	}
}

func (s *InvoiceServiceTestSuite) setupTestData() {
	ctx := s.GetContext()

	t, err := s.GetStores().TariffRepo.Create(ctx, &tariff.Tariff{
		Name:      "Tarifa domestica",
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	_, err = s.GetStores().TariffRepo.ReplaceBands(ctx, t.ID, []tariff.Band{
		{ConsumptionMin: 0, ConsumptionMax: lo.ToPtr(int64(20)), UnitPrice: decimal.RequireFromString("10.00")},
		{ConsumptionMin: 21, ConsumptionMax: lo.ToPtr(int64(50)), UnitPrice: decimal.RequireFromString("2.50")},
		{ConsumptionMin: 51, ConsumptionMax: nil, UnitPrice: decimal.RequireFromString("4.00")},
	})
	s.NoError(err)
	s.testData.tariffID = t.ID

	c, err := s.GetStores().CustomerRepo.Create(ctx, &customer.Customer{
		Name:      "Maria",
		LastName:  "Lopez",
		TariffID:  lo.ToPtr(t.ID),
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

	period, err := types.ParsePeriod("2026-08")
	s.NoError(err)
	rd, err := s.GetStores().ReadingRepo.Create(ctx, &reading.Reading{
		MeterID:     m.ID,
		Consumption: decimal.RequireFromString("35"),
		ReadingDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Period:      period,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	s.testData.reading = rd
}

func (s *InvoiceServiceTestSuite) createRequest() *dto.CreateInvoiceRequest {
	return &dto.CreateInvoiceRequest{
		ReadingID:   s.testData.reading.ID,
		CustomerID:  s.testData.customer.ID,
		TariffID:    s.testData.tariffID,
		Consumption: s.testData.reading.Consumption,
	}
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice() {
	issue := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req := s.createRequest()
	req.IssueDate = &issue

	resp, err := s.invoiceService.CreateInvoice(s.GetContext(), req)
	s.NoError(err)
	s.NotNil(resp)

	inv := resp.Invoice
	s.True(decimal.RequireFromString("47.50").Equal(inv.Total), "got %s", inv.Total)
	s.True(inv.OutstandingBalance.Equal(inv.Total))
	s.Equal(types.InvoiceStatusPending, inv.Status)
	s.Equal(issue, inv.IssueDate)
	s.Equal(issue.AddDate(0, 0, 30), inv.DueDate)

	s.Equal(1, s.GetPublisher().CountByType(notification.EventInvoiceCreated))
}

func (s *InvoiceServiceTestSuite) TestDuplicateReadingRejected() {
	_, err := s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
	s.Equal(1, s.GetStores().InvoiceRepo.CountByReading(s.testData.reading.ID))
}

func (s *InvoiceServiceTestSuite) TestDuplicateCheckedBeforeOtherPreconditions() {
	_, err := s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	// Even with a bogus tariff the duplicate wins.
	req := s.createRequest()
	req.TariffID = 9999
	_, err = s.invoiceService.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *InvoiceServiceTestSuite) TestUnknownTariffRejectedBeforeWrite() {
	req := s.createRequest()
	req.TariffID = 9999

	_, err := s.invoiceService.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal(0, s.GetStores().InvoiceRepo.CountByReading(s.testData.reading.ID))
}

func (s *InvoiceServiceTestSuite) TestUnknownCustomerRejected() {
	req := s.createRequest()
	req.CustomerID = 9999

	_, err := s.invoiceService.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceTestSuite) TestUnknownReadingRejected() {
	req := s.createRequest()
	req.ReadingID = 9999

	_, err := s.invoiceService.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

// addCustomerWithReading seeds a complete billing chain for bulk tests and
// returns the reading.
func (s *InvoiceServiceTestSuite) addCustomerWithReading(serial string, tariffID *int64, consumption string) *reading.Reading {
	ctx := s.GetContext()

	c, err := s.GetStores().CustomerRepo.Create(ctx, &customer.Customer{
		Name:      "Cliente " + serial,
		TariffID:  tariffID,
		BaseModel: types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)

	m, err := s.GetStores().MeterRepo.Create(ctx, &meter.Meter{
		CustomerID:   c.ID,
		SerialNumber: serial,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)

	period, err := types.ParsePeriod("2026-08")
	s.NoError(err)
	rd, err := s.GetStores().ReadingRepo.Create(ctx, &reading.Reading{
		MeterID:     m.ID,
		Consumption: decimal.RequireFromString(consumption),
		ReadingDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Period:      period,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	})
	s.NoError(err)
	return rd
}

func (s *InvoiceServiceTestSuite) TestGenerateForPeriod() {
	s.addCustomerWithReading("MED-002", lo.ToPtr(s.testData.tariffID), "15")
	s.addCustomerWithReading("MED-003", lo.ToPtr(s.testData.tariffID), "60")

	resp, err := s.invoiceService.GenerateForPeriod(s.GetContext(), &dto.GenerateInvoicesRequest{
		Period: "2026-08",
	})
	s.NoError(err)
	s.Equal(3, resp.Generated)
	s.Equal(0, resp.Failed)
	s.Len(resp.Details, 3)

	for _, detail := range resp.Details {
		s.Equal(types.BulkItemGenerated, detail.Status)
		s.NotNil(detail.Amount)
		s.Empty(detail.Error)
	}

	s.Equal(3, s.GetPublisher().CountByType(notification.EventInvoiceCreated))
}

func (s *InvoiceServiceTestSuite) TestGenerateForPeriodIsolatesFailures() {
	s.addCustomerWithReading("MED-002", lo.ToPtr(s.testData.tariffID), "15")
	// Customer without an assigned tariff cannot be billed.
	failing := s.addCustomerWithReading("MED-003", nil, "25")

	resp, err := s.invoiceService.GenerateForPeriod(s.GetContext(), &dto.GenerateInvoicesRequest{
		Period: "2026-08",
	})
	s.NoError(err)
	s.Equal(2, resp.Generated)
	s.Equal(1, resp.Failed)

	var failedDetail *dto.BulkInvoiceDetail
	for i := range resp.Details {
		if resp.Details[i].ReadingID == failing.ID {
			failedDetail = &resp.Details[i]
		}
	}
	s.NotNil(failedDetail)
	s.Equal(types.BulkItemFailed, failedDetail.Status)
	s.Equal("el cliente no tiene tarifa asignada", failedDetail.Error)
	s.Equal(0, s.GetStores().InvoiceRepo.CountByReading(failing.ID))
}

func (s *InvoiceServiceTestSuite) TestGenerateForPeriodSkipsBilledReadings() {
	_, err := s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	resp, err := s.invoiceService.GenerateForPeriod(s.GetContext(), &dto.GenerateInvoicesRequest{
		Period: "2026-08",
	})
	s.NoError(err)
	s.Equal(0, resp.Generated)
	s.Equal(0, resp.Failed)
	s.Empty(resp.Details)
	s.Equal(1, s.GetStores().InvoiceRepo.CountByReading(s.testData.reading.ID))
}

func (s *InvoiceServiceTestSuite) TestSingleAndBulkProduceSameTotal() {
	single, err := s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	// Same tariff, same consumption, billed through the bulk path.
	other := s.addCustomerWithReading("MED-002", lo.ToPtr(s.testData.tariffID), "35")
	resp, err := s.invoiceService.GenerateForPeriod(s.GetContext(), &dto.GenerateInvoicesRequest{
		Period: "2026-08",
	})
	s.NoError(err)
	s.Equal(1, resp.Generated)

	bulk, err := s.GetStores().InvoiceRepo.GetByReading(s.GetContext(), other.ID)
	s.NoError(err)
	s.True(single.Invoice.Total.Equal(bulk.Total),
		"single %s vs bulk %s", single.Invoice.Total, bulk.Total)
}

func (s *InvoiceServiceTestSuite) TestGenerateForPeriodRejectsBadPeriod() {
	_, err := s.invoiceService.GenerateForPeriod(s.GetContext(), &dto.GenerateInvoicesRequest{
		Period: "08-2026",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceTestSuite) TestPublishFailureDoesNotFailCreation() {
	s.GetPublisher().FailWith(ierr.NewError("broker down").Mark(ierr.ErrInternal))

	resp, err := s.invoiceService.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.NotNil(resp)
	s.Equal(1, s.GetStores().InvoiceRepo.CountByReading(s.testData.reading.ID))
}
