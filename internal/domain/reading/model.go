package reading

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Reading is one meter reading for one billing period. The composite unique
// index enforces at most one reading per meter and period at the storage
// layer.
type Reading struct {
	ID          int64           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	MeterID     int64           `json:"medidor_id" gorm:"column:medidor_id;index;not null;uniqueIndex:idx_lecturas_medidor_periodo"`
	RouteID     *int64          `json:"ruta_id" gorm:"column:ruta_id;index"`
	Consumption decimal.Decimal `json:"consumo_m3" gorm:"column:consumo_m3;type:numeric(12,3);not null"`
	ReadingDate time.Time       `json:"fecha_lectura" gorm:"column:fecha_lectura;not null"`
	Period      types.Period    `json:"periodo" gorm:"column:periodo;not null;uniqueIndex:idx_lecturas_medidor_periodo"`

	types.BaseModel
}

func (Reading) TableName() string { return "lecturas" }
