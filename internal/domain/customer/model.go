package customer

import "github.com/Mahynlo/Api-AguaVp-sub000/internal/types"

// Customer is an account holder of the water utility. TariffID is optional:
// customers without an assigned tariff cannot be billed and are skipped by
// bulk invoice generation.
type Customer struct {
	ID        int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string  `json:"nombre" gorm:"column:nombre;not null"`
	LastName  string  `json:"apellido,omitempty" gorm:"column:apellido"`
	Address   string  `json:"direccion,omitempty" gorm:"column:direccion"`
	Phone     string  `json:"telefono,omitempty" gorm:"column:telefono"`
	Email     string  `json:"email,omitempty" gorm:"column:email"`
	TariffID  *int64  `json:"tarifa_id" gorm:"column:tarifa_id;index"`
	RouteID   *int64  `json:"ruta_id" gorm:"column:ruta_id;index"`

	types.BaseModel
}

func (Customer) TableName() string { return "clientes" }

// FullName returns the display name used in notifications.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.Name
	}
	return c.Name + " " + c.LastName
}
