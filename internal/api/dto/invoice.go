package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateInvoiceRequest struct {
	ReadingID   int64           `json:"lectura_id" validate:"required,gt=0"`
	CustomerID  int64           `json:"cliente_id" validate:"required,gt=0"`
	TariffID    int64           `json:"tarifa_id" validate:"required,gt=0"`
	Consumption decimal.Decimal `json:"consumo_m3" validate:"required" swaggertype:"string"`
	// IssueDate defaults to the current day when omitted.
	IssueDate *time.Time `json:"fecha_emision,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// GenerateInvoicesRequest triggers bulk generation for every unbilled
// reading of the period.
type GenerateInvoicesRequest struct {
	Period string `json:"periodo" validate:"required"`
	// IssueDate defaults to the current day when omitted.
	IssueDate *time.Time `json:"fecha_emision,omitempty"`
}

func (r *GenerateInvoicesRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

// BulkInvoiceDetail reports the outcome for a single candidate reading in a
// bulk generation run.
type BulkInvoiceDetail struct {
	ReadingID    int64                `json:"lectura_id"`
	CustomerID   int64                `json:"cliente_id,omitempty"`
	CustomerName string               `json:"cliente_nombre,omitempty"`
	MeterID      int64                `json:"medidor_id"`
	Amount       *decimal.Decimal     `json:"monto,omitempty" swaggertype:"string"`
	Error        string               `json:"error,omitempty"`
	Status       types.BulkItemStatus `json:"estado"`
}

// GenerateInvoicesResponse summarizes a bulk generation run. Failures never
// abort the batch; they are reported per item.
type GenerateInvoicesResponse struct {
	Period    string              `json:"periodo"`
	Generated int                 `json:"generadas"`
	Failed    int                 `json:"fallidas"`
	Details   []BulkInvoiceDetail `json:"detalles"`
}
