package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type ApplyPaymentRequest struct {
	InvoiceID      int64               `json:"factura_id" validate:"required,gt=0"`
	AmountTendered decimal.Decimal     `json:"cantidad_entregada" validate:"required" swaggertype:"string"`
	Method         types.PaymentMethod `json:"metodo_pago" validate:"required"`
	// PaymentDate defaults to now when omitted.
	PaymentDate *time.Time `json:"fecha_pago,omitempty"`
	// RecordedBy defaults to the authenticated caller when omitted.
	RecordedBy string `json:"modificado_por,omitempty"`
}

func (r *ApplyPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return nil
}

// ApplyPaymentResponse carries the clamp outcome alongside the updated
// invoice: Applied is what reduced the balance, Change goes back to the
// payer.
type ApplyPaymentResponse struct {
	Payment *payment.Payment `json:"pago"`
	Applied decimal.Decimal  `json:"monto" swaggertype:"string"`
	Change  decimal.Decimal  `json:"cambio" swaggertype:"string"`
	Invoice *invoice.Invoice `json:"factura"`
}

type UpdatePaymentRequest struct {
	Method *types.PaymentMethod `json:"metodo_pago,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type PaymentResponse struct {
	*payment.Payment
}

type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Total int                `json:"total"`
}
