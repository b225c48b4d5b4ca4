package route

import "github.com/Mahynlo/Api-AguaVp-sub000/internal/types"

// Route is a delivery/reading route grouping meters for field work.
type Route struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `json:"nombre" gorm:"column:nombre;uniqueIndex;not null"`
	Description string `json:"descripcion,omitempty" gorm:"column:descripcion"`
	AssignedTo  string `json:"asignado_a,omitempty" gorm:"column:asignado_a"`

	types.BaseModel
}

func (Route) TableName() string { return "rutas" }
