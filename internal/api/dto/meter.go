package dto

import (
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateMeterRequest struct {
	CustomerID   int64  `json:"cliente_id" validate:"required,gt=0"`
	SerialNumber string `json:"numero_serie" validate:"required"`
	Location     string `json:"ubicacion,omitempty"`
}

func (r *CreateMeterRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateMeterRequest struct {
	SerialNumber *string `json:"numero_serie,omitempty"`
	Location     *string `json:"ubicacion,omitempty"`
}

func (r *UpdateMeterRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type MeterResponse struct {
	*meter.Meter
}

type ListMetersResponse struct {
	Items []*MeterResponse `json:"items"`
	Total int              `json:"total"`
}
