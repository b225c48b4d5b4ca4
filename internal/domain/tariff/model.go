package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Tariff groups the consumption bands that price a customer's water usage.
type Tariff struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `json:"nombre" gorm:"column:nombre;not null"`
	Description string `json:"descripcion,omitempty" gorm:"column:descripcion"`

	// Bands is populated only by GetWithBands / ReplaceBands paths.
	Bands []Band `json:"rangos,omitempty" gorm:"foreignKey:TariffID;references:ID"`

	types.BaseModel
}

func (Tariff) TableName() string { return "tarifas" }

// Band is one stepped-rate segment of a tariff. Boundaries are inclusive
// cubic meters. A nil ConsumptionMax marks the unbounded top band.
//
// For the band whose ConsumptionMin is zero, UnitPrice is a flat charge for
// the whole band rather than a per-unit rate.
type Band struct {
	ID             int64            `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TariffID       int64            `json:"tarifa_id" gorm:"column:tarifa_id;index;not null"`
	ConsumptionMin int64            `json:"consumo_min" gorm:"column:consumo_min;not null"`
	ConsumptionMax *int64           `json:"consumo_max" gorm:"column:consumo_max"`
	UnitPrice      decimal.Decimal  `json:"precio_unitario" gorm:"column:precio_unitario;type:numeric(12,2);not null"`

	types.BaseModel
}

func (Band) TableName() string { return "rangos_tarifas" }

// IsBase reports whether this is the flat-charge base band.
func (b Band) IsBase() bool {
	return b.ConsumptionMin == 0
}

// Contains reports whether the truncated consumption falls inside the band.
func (b Band) Contains(consumption int64) bool {
	if consumption < b.ConsumptionMin {
		return false
	}
	return b.ConsumptionMax == nil || consumption <= *b.ConsumptionMax
}

// Units returns the number of billable units in a fully consumed band.
// Both boundaries are inclusive. Undefined for the unbounded band.
func (b Band) Units() int64 {
	if b.ConsumptionMax == nil {
		return 0
	}
	return *b.ConsumptionMax - b.ConsumptionMin + 1
}
