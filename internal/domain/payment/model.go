package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Payment records one payment event against exactly one invoice.
//
// Amount is the portion applied to the invoice balance, clamped so the
// balance never goes below zero. AmountTendered is what the payer handed
// over; Change is the difference returned to them.
type Payment struct {
	ID             int64               `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	InvoiceID      int64               `json:"factura_id" gorm:"column:factura_id;index;not null"`
	PaymentDate    time.Time           `json:"fecha_pago" gorm:"column:fecha_pago;not null"`
	Amount         decimal.Decimal     `json:"monto" gorm:"column:monto;type:numeric(12,2);not null"`
	AmountTendered decimal.Decimal     `json:"cantidad_entregada" gorm:"column:cantidad_entregada;type:numeric(12,2);not null"`
	Change         decimal.Decimal     `json:"cambio" gorm:"column:cambio;type:numeric(12,2);not null"`
	Method         types.PaymentMethod `json:"metodo_pago" gorm:"column:metodo_pago;not null"`
	ModifiedBy     string              `json:"modificado_por" gorm:"column:modificado_por"`

	types.BaseModel
}

func (Payment) TableName() string { return "pagos" }
