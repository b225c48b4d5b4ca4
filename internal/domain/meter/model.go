package meter

import "github.com/Mahynlo/Api-AguaVp-sub000/internal/types"

// Meter is a physical water meter installed for one customer.
type Meter struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID   int64  `json:"cliente_id" gorm:"column:cliente_id;index;not null"`
	SerialNumber string `json:"numero_serie" gorm:"column:numero_serie;uniqueIndex;not null"`
	Location     string `json:"ubicacion,omitempty" gorm:"column:ubicacion"`

	types.BaseModel
}

func (Meter) TableName() string { return "medidores" }
