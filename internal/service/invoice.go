package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// InvoiceService creates invoices from readings, one invoice per reading,
// with the total computed by the rating engine.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	// GenerateForPeriod creates invoices for every unbilled reading in the
	// period. Individual failures are collected, never aborting the batch.
	GenerateForPeriod(ctx context.Context, req *dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error)
	GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error)
	ListInvoicesByCustomer(ctx context.Context, customerID int64) (*dto.ListInvoicesResponse, error)
}

type invoiceService struct {
	ServiceParams
	rating RatingService
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		rating:        NewRatingService(params),
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	issueDate := time.Now().UTC()
	if req.IssueDate != nil {
		issueDate = req.IssueDate.UTC()
	}

	inv, err := s.createInvoice(ctx, req.ReadingID, req.CustomerID, req.TariffID, req.Consumption, issueDate)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// createInvoice runs the precondition chain and persists the invoice. No
// write happens before every precondition has passed; the storage unique
// index on lectura_id backstops the duplicate check under concurrency.
func (s *invoiceService) createInvoice(
	ctx context.Context,
	readingID, customerID, tariffID int64,
	consumption decimal.Decimal,
	issueDate time.Time,
) (*invoice.Invoice, error) {
	if existing, err := s.InvoiceRepo.GetByReading(ctx, readingID); err == nil && existing != nil {
		return nil, ierr.NewError("an invoice already exists for this reading").
			WithHint("Each reading can be billed only once").
			WithReportableDetails(map[string]interface{}{
				"lectura_id": readingID,
				"factura_id": existing.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	// Covers tariff existence, band configuration and negative consumption.
	total, err := s.rating.RateConsumption(ctx, tariffID, consumption)
	if err != nil {
		return nil, err
	}

	if _, err := s.CustomerRepo.Get(ctx, customerID); err != nil {
		return nil, err
	}
	rd, err := s.ReadingRepo.Get(ctx, readingID)
	if err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		ReadingID:          readingID,
		CustomerID:         customerID,
		TariffID:           tariffID,
		IssueDate:          issueDate,
		DueDate:            issueDate.AddDate(0, 0, types.InvoiceDueDays),
		Total:              total,
		OutstandingBalance: total,
		Status:             types.InvoiceStatusPending,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}

	created, err := s.InvoiceRepo.Create(ctx, inv)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice created",
		"factura_id", created.ID,
		"lectura_id", readingID,
		"cliente_id", customerID,
		"total", total.String(),
	)

	s.publishInvoiceCreated(ctx, created, rd)
	return created, nil
}

// publishInvoiceCreated emits the invoice_created event. Notification is
// best effort: failures are logged and swallowed.
func (s *invoiceService) publishInvoiceCreated(ctx context.Context, inv *invoice.Invoice, rd *reading.Reading) {
	if s.Publisher == nil {
		return
	}

	payload := notification.InvoiceCreatedPayload{
		InvoiceID: inv.ID,
		Period:    rd.Period.String(),
		Total:     inv.Total,
		DueDate:   inv.DueDate.Format("2006-01-02"),
	}
	if c, err := s.CustomerRepo.Get(ctx, inv.CustomerID); err == nil {
		payload.CustomerName = c.FullName()
	}
	if m, err := s.MeterRepo.Get(ctx, rd.MeterID); err == nil {
		payload.MeterSerial = m.SerialNumber
	}

	if err := s.Publisher.Publish(ctx, notification.EventInvoiceCreated, payload); err != nil {
		s.Logger.Warnw("failed to publish invoice_created event",
			"factura_id", inv.ID,
			"error", err,
		)
	}
}

func (s *invoiceService) GenerateForPeriod(ctx context.Context, req *dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period, err := types.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	issueDate := time.Now().UTC()
	if req.IssueDate != nil {
		issueDate = req.IssueDate.UTC()
	}

	candidates, err := s.ReadingRepo.ListUnbilledByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	resp := &dto.GenerateInvoicesResponse{
		Period:  period.String(),
		Details: make([]dto.BulkInvoiceDetail, 0, len(candidates)),
	}

	for _, rd := range candidates {
		detail := s.generateOne(ctx, rd, issueDate)
		if detail.Status == types.BulkItemGenerated {
			resp.Generated++
		} else {
			resp.Failed++
		}
		resp.Details = append(resp.Details, detail)
	}

	s.Logger.Infow("bulk invoice generation finished",
		"periodo", period.String(),
		"generadas", resp.Generated,
		"fallidas", resp.Failed,
	)
	return resp, nil
}

// generateOne resolves the billing chain (reading -> meter -> customer ->
// tariff) for one candidate and creates its invoice. Every failure is
// captured in the returned detail so the batch keeps going.
func (s *invoiceService) generateOne(ctx context.Context, rd *reading.Reading, issueDate time.Time) dto.BulkInvoiceDetail {
	detail := dto.BulkInvoiceDetail{
		ReadingID: rd.ID,
		MeterID:   rd.MeterID,
		Status:    types.BulkItemFailed,
	}

	m, err := s.MeterRepo.Get(ctx, rd.MeterID)
	if err != nil {
		detail.Error = errorDetailMessage(err)
		return detail
	}
	c, err := s.CustomerRepo.Get(ctx, m.CustomerID)
	if err != nil {
		detail.Error = errorDetailMessage(err)
		return detail
	}
	detail.CustomerID = c.ID
	detail.CustomerName = c.FullName()

	if c.TariffID == nil {
		detail.Error = "el cliente no tiene tarifa asignada"
		return detail
	}

	inv, err := s.createInvoice(ctx, rd.ID, c.ID, *c.TariffID, rd.Consumption, issueDate)
	if err != nil {
		detail.Error = errorDetailMessage(err)
		return detail
	}

	detail.Amount = lo.ToPtr(inv.Total)
	detail.Status = types.BulkItemGenerated
	detail.Error = ""
	return detail
}

// errorDetailMessage prefers the user facing hint over the raw error text.
func errorDetailMessage(err error) string {
	if hint := ierr.Hint(err); hint != "" {
		return hint
	}
	return err.Error()
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return newListInvoicesResponse(invoices), nil
}

func (s *invoiceService) ListInvoicesByCustomer(ctx context.Context, customerID int64) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return newListInvoicesResponse(invoices), nil
}

func newListInvoicesResponse(invoices []*invoice.Invoice) *dto.ListInvoicesResponse {
	items := lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return &dto.InvoiceResponse{Invoice: inv}
	})
	return &dto.ListInvoicesResponse{Items: items, Total: len(items)}
}
