package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Invoice bills one meter reading. Total is computed once at creation and
// never recomputed; OutstandingBalance starts equal to Total and only ever
// decreases as payments are applied.
type Invoice struct {
	ID                 int64               `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ReadingID          int64               `json:"lectura_id" gorm:"column:lectura_id;uniqueIndex;not null"`
	CustomerID         int64               `json:"cliente_id" gorm:"column:cliente_id;index;not null"`
	TariffID           int64               `json:"tarifa_id" gorm:"column:tarifa_id;index;not null"`
	IssueDate          time.Time           `json:"fecha_emision" gorm:"column:fecha_emision;not null"`
	DueDate            time.Time           `json:"fecha_vencimiento" gorm:"column:fecha_vencimiento;not null"`
	Total              decimal.Decimal     `json:"total" gorm:"column:total;type:numeric(12,2);not null"`
	OutstandingBalance decimal.Decimal     `json:"saldo_pendiente" gorm:"column:saldo_pendiente;type:numeric(12,2);not null"`
	Status             types.InvoiceStatus `json:"estado" gorm:"column:estado;not null"`

	types.BaseModel
}

func (Invoice) TableName() string { return "facturas" }

// IsPaid reports whether no balance remains.
func (i *Invoice) IsPaid() bool {
	return i.OutstandingBalance.LessThanOrEqual(decimal.Zero)
}
