package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// PaymentService applies payments against invoice balances and keeps the
// ledger consistent: the applied amount is clamped to the outstanding
// balance, the excess is returned as change, and the balance decrement is
// explicit and atomic with the payment insert.
type PaymentService interface {
	ApplyPayment(ctx context.Context, req *dto.ApplyPaymentRequest) (*dto.ApplyPaymentResponse, error)
	GetPayment(ctx context.Context, id int64) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context) (*dto.ListPaymentsResponse, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID int64) (*dto.ListPaymentsResponse, error)
	// UpdatePayment modifies bookkeeping fields only; monetary fields and
	// the invoice balance are untouched.
	UpdatePayment(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

func (s *paymentService) ApplyPayment(ctx context.Context, req *dto.ApplyPaymentRequest) (*dto.ApplyPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.AmountTendered.IsPositive() {
		return nil, ierr.NewError("payment amount must be positive").
			WithHint("The tendered amount must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"cantidad_entregada": req.AmountTendered.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if !req.Method.Validate() {
		return nil, ierr.NewError("unknown payment method").
			WithHint("Valid payment methods are efectivo, transferencia and tarjeta").
			WithReportableDetails(map[string]interface{}{
				"metodo_pago": string(req.Method),
			}).
			Mark(ierr.ErrValidation)
	}

	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid() {
		return nil, ierr.NewError("invoice is already fully paid").
			WithHint("The invoice has no outstanding balance").
			WithReportableDetails(map[string]interface{}{
				"factura_id":      inv.ID,
				"saldo_pendiente": inv.OutstandingBalance.String(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	tendered := types.RoundMoney(req.AmountTendered)
	balance := inv.OutstandingBalance

	applied := decimal.Min(balance, tendered)
	change := types.RoundMoney(tendered.Sub(applied))

	// Guard against arithmetic drift upstream: the applied amount may
	// exceed the balance by at most one cent, and then only via rounding.
	if applied.GreaterThan(balance.Add(types.MoneyTolerance)) {
		return nil, ierr.NewError("payment would overdraw the invoice balance").
			WithHint("The applied amount exceeds the outstanding balance").
			WithReportableDetails(map[string]interface{}{
				"factura_id":      inv.ID,
				"saldo_pendiente": balance.String(),
				"monto":           applied.String(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}
	recordedBy := req.RecordedBy
	if recordedBy == "" {
		recordedBy = types.GetUserID(ctx)
	}

	p := &payment.Payment{
		InvoiceID:      inv.ID,
		PaymentDate:    paymentDate,
		Amount:         applied,
		AmountTendered: tendered,
		Change:         change,
		Method:         req.Method,
		ModifiedBy:     recordedBy,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	updated, err := s.InvoiceRepo.ApplyPayment(ctx, inv.ID, p)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("payment applied",
		"pago_id", p.ID,
		"factura_id", inv.ID,
		"monto", applied.String(),
		"cambio", change.String(),
		"saldo_pendiente", updated.OutstandingBalance.String(),
		"estado", string(updated.Status),
	)

	s.publishPaymentReceived(ctx, p, updated)

	return &dto.ApplyPaymentResponse{
		Payment: p,
		Applied: applied,
		Change:  change,
		Invoice: updated,
	}, nil
}

// publishPaymentReceived emits the payment_received event, best effort.
func (s *paymentService) publishPaymentReceived(ctx context.Context, p *payment.Payment, inv *invoice.Invoice) {
	if s.Publisher == nil {
		return
	}
	payload := notification.PaymentReceivedPayload{
		PaymentID:          p.ID,
		InvoiceID:          inv.ID,
		Amount:             p.Amount,
		Change:             p.Change,
		OutstandingBalance: inv.OutstandingBalance,
		InvoiceStatus:      string(inv.Status),
	}
	if err := s.Publisher.Publish(ctx, notification.EventPaymentReceived, payload); err != nil {
		s.Logger.Warnw("failed to publish payment_received event",
			"pago_id", p.ID,
			"factura_id", inv.ID,
			"error", err,
		)
	}
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) ListPayments(ctx context.Context) (*dto.ListPaymentsResponse, error) {
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return newListPaymentsResponse(payments), nil
}

func (s *paymentService) ListPaymentsByInvoice(ctx context.Context, invoiceID int64) (*dto.ListPaymentsResponse, error) {
	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return newListPaymentsResponse(payments), nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Method != nil {
		if !req.Method.Validate() {
			return nil, ierr.NewError("unknown payment method").
				WithHint("Valid payment methods are efectivo, transferencia and tarjeta").
				WithReportableDetails(map[string]interface{}{
					"metodo_pago": string(*req.Method),
				}).
				Mark(ierr.ErrValidation)
		}
		p.Method = *req.Method
	}
	p.ModifiedBy = types.GetUserID(ctx)
	p.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.PaymentRepo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: updated}, nil
}

func newListPaymentsResponse(payments []*payment.Payment) *dto.ListPaymentsResponse {
	items := lo.Map(payments, func(p *payment.Payment, _ int) *dto.PaymentResponse {
		return &dto.PaymentResponse{Payment: p}
	})
	return &dto.ListPaymentsResponse{Items: items, Total: len(items)}
}
