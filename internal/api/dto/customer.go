package dto

import (
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateCustomerRequest struct {
	Name     string `json:"nombre" validate:"required"`
	LastName string `json:"apellido,omitempty"`
	Address  string `json:"direccion,omitempty"`
	Phone    string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	TariffID *int64 `json:"tarifa_id,omitempty"`
	RouteID  *int64 `json:"ruta_id,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCustomerRequest) ToCustomer(base types.BaseModel) *customer.Customer {
	return &customer.Customer{
		Name:      r.Name,
		LastName:  r.LastName,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		TariffID:  r.TariffID,
		RouteID:   r.RouteID,
		BaseModel: base,
	}
}

type UpdateCustomerRequest struct {
	Name     *string `json:"nombre,omitempty"`
	LastName *string `json:"apellido,omitempty"`
	Address  *string `json:"direccion,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	TariffID *int64  `json:"tarifa_id,omitempty"`
	RouteID  *int64  `json:"ruta_id,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CustomerResponse struct {
	*customer.Customer
}

type ListCustomersResponse struct {
	Items []*CustomerResponse `json:"items"`
	Total int                 `json:"total"`
}
