package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateReadingRequest struct {
	MeterID     int64           `json:"medidor_id" validate:"required,gt=0"`
	RouteID     *int64          `json:"ruta_id,omitempty"`
	Consumption decimal.Decimal `json:"consumo_m3" validate:"required" swaggertype:"string"`
	ReadingDate *time.Time      `json:"fecha_lectura,omitempty"`
	Period      string          `json:"periodo" validate:"required"`
}

func (r *CreateReadingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateReadingRequest struct {
	Consumption *decimal.Decimal `json:"consumo_m3,omitempty" swaggertype:"string"`
	ReadingDate *time.Time       `json:"fecha_lectura,omitempty"`
}

func (r *UpdateReadingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ReadingResponse struct {
	*reading.Reading
}

type ListReadingsResponse struct {
	Items []*ReadingResponse `json:"items"`
	Total int                `json:"total"`
}
