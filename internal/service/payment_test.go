package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/testutil"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type PaymentServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	paymentService PaymentService
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.paymentService = NewPaymentService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		InvoiceRepo: s.GetStores().InvoiceRepo,
		PaymentRepo: s.GetStores().PaymentRepo,
		Publisher:   s.GetPublisher(),
	})
}

// createInvoice seeds a pending invoice with the given total.
func (s *PaymentServiceTestSuite) createInvoice(total string) *invoice.Invoice {
	amount := decimal.RequireFromString(total)
	issue := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	inv, err := s.GetStores().InvoiceRepo.Create(s.GetContext(), &invoice.Invoice{
		ReadingID:          int64(len(total)*100) + amount.IntPart(),
		CustomerID:         1,
		TariffID:           1,
		IssueDate:          issue,
		DueDate:            issue.AddDate(0, 0, 30),
		Total:              amount,
		OutstandingBalance: amount,
		Status:             types.InvoiceStatusPending,
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	})
	s.NoError(err)
	return inv
}

func (s *PaymentServiceTestSuite) apply(invoiceID int64, tendered string) (*dto.ApplyPaymentResponse, error) {
	return s.paymentService.ApplyPayment(s.GetContext(), &dto.ApplyPaymentRequest{
		InvoiceID:      invoiceID,
		AmountTendered: decimal.RequireFromString(tendered),
		Method:         types.PaymentMethodCash,
	})
}

func (s *PaymentServiceTestSuite) TestOverpaymentReturnsChange() {
	inv := s.createInvoice("100.00")

	resp, err := s.apply(inv.ID, "150.00")
	s.NoError(err)

	s.True(decimal.RequireFromString("100.00").Equal(resp.Applied), "applied %s", resp.Applied)
	s.True(decimal.RequireFromString("50.00").Equal(resp.Change), "change %s", resp.Change)
	s.True(resp.Invoice.OutstandingBalance.IsZero())
	s.Equal(types.InvoiceStatusPaid, resp.Invoice.Status)

	s.Equal(1, s.GetPublisher().CountByType(notification.EventPaymentReceived))
}

func (s *PaymentServiceTestSuite) TestPartialPayment() {
	inv := s.createInvoice("100.00")

	resp, err := s.apply(inv.ID, "30.00")
	s.NoError(err)

	s.True(decimal.RequireFromString("30.00").Equal(resp.Applied))
	s.True(resp.Change.IsZero())
	s.True(decimal.RequireFromString("70.00").Equal(resp.Invoice.OutstandingBalance))
	s.Equal(types.InvoiceStatusPending, resp.Invoice.Status)
}

func (s *PaymentServiceTestSuite) TestPartialThenSettle() {
	inv := s.createInvoice("100.00")

	_, err := s.apply(inv.ID, "30.00")
	s.NoError(err)
	resp, err := s.apply(inv.ID, "80.00")
	s.NoError(err)

	s.True(decimal.RequireFromString("70.00").Equal(resp.Applied))
	s.True(decimal.RequireFromString("10.00").Equal(resp.Change))
	s.True(resp.Invoice.OutstandingBalance.IsZero())
	s.Equal(types.InvoiceStatusPaid, resp.Invoice.Status)

	payments, err := s.GetStores().PaymentRepo.ListByInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Len(payments, 2)
}

func (s *PaymentServiceTestSuite) TestCentOverTender() {
	inv := s.createInvoice("30.00")

	resp, err := s.apply(inv.ID, "30.01")
	s.NoError(err)

	s.True(decimal.RequireFromString("30.00").Equal(resp.Applied))
	s.True(decimal.RequireFromString("0.01").Equal(resp.Change))
	s.Equal(types.InvoiceStatusPaid, resp.Invoice.Status)
}

func (s *PaymentServiceTestSuite) TestAlreadyPaidRejected() {
	inv := s.createInvoice("50.00")

	_, err := s.apply(inv.ID, "50.00")
	s.NoError(err)

	_, err = s.apply(inv.ID, "10.00")
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	payments, listErr := s.GetStores().PaymentRepo.ListByInvoice(s.GetContext(), inv.ID)
	s.NoError(listErr)
	s.Len(payments, 1)
}

func (s *PaymentServiceTestSuite) TestNonPositiveAmountRejected() {
	inv := s.createInvoice("50.00")

	for _, tendered := range []string{"0", "-10.00"} {
		_, err := s.apply(inv.ID, tendered)
		s.Error(err)
		s.True(ierr.IsValidation(err), "tendered %s", tendered)
	}
}

func (s *PaymentServiceTestSuite) TestUnknownMethodRejected() {
	inv := s.createInvoice("50.00")

	_, err := s.paymentService.ApplyPayment(s.GetContext(), &dto.ApplyPaymentRequest{
		InvoiceID:      inv.ID,
		AmountTendered: decimal.RequireFromString("10.00"),
		Method:         types.PaymentMethod("cheque"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceTestSuite) TestUnknownInvoiceRejected() {
	_, err := s.apply(9999, "10.00")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceTestSuite) TestUpdatePaymentBookkeepingOnly() {
	inv := s.createInvoice("40.00")
	resp, err := s.apply(inv.ID, "40.00")
	s.NoError(err)

	method := types.PaymentMethodTransfer
	updated, err := s.paymentService.UpdatePayment(s.GetContext(), resp.Payment.ID, &dto.UpdatePaymentRequest{
		Method: &method,
	})
	s.NoError(err)
	s.Equal(types.PaymentMethodTransfer, updated.Payment.Method)
	s.True(updated.Payment.Amount.Equal(resp.Payment.Amount))

	// The invoice balance is untouched by payment updates.
	after, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.True(after.OutstandingBalance.IsZero())
}

func (s *PaymentServiceTestSuite) TestPublishFailureDoesNotFailPayment() {
	inv := s.createInvoice("25.00")
	s.GetPublisher().FailWith(ierr.NewError("broker down").Mark(ierr.ErrInternal))

	resp, err := s.apply(inv.ID, "25.00")
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, resp.Invoice.Status)
}
