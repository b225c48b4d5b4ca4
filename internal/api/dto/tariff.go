package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateTariffRequest struct {
	Name        string              `json:"nombre" validate:"required"`
	Description string              `json:"descripcion,omitempty"`
	Bands       []CreateBandRequest `json:"rangos,omitempty" validate:"omitempty,min=1,dive"`
}

type CreateBandRequest struct {
	ConsumptionMin int64           `json:"consumo_min" validate:"gte=0"`
	ConsumptionMax *int64          `json:"consumo_max"`
	UnitPrice      decimal.Decimal `json:"precio_unitario" validate:"required" swaggertype:"string"`
}

func (r *CreateTariffRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToBands converts the request bands to domain bands. Invariant checks
// (contiguity, overlap) happen in tariff.ValidateBands.
func (r *CreateTariffRequest) ToBands(tariffID int64) []tariff.Band {
	return toBands(tariffID, r.Bands)
}

type UpdateTariffRequest struct {
	Name        string `json:"nombre,omitempty"`
	Description string `json:"descripcion,omitempty"`
}

// ReplaceBandsRequest swaps a tariff's whole band set in one batch.
type ReplaceBandsRequest struct {
	Bands []CreateBandRequest `json:"rangos" validate:"required,min=1,dive"`
}

func (r *ReplaceBandsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *ReplaceBandsRequest) ToBands(tariffID int64) []tariff.Band {
	return toBands(tariffID, r.Bands)
}

func toBands(tariffID int64, reqs []CreateBandRequest) []tariff.Band {
	bands := make([]tariff.Band, 0, len(reqs))
	for _, b := range reqs {
		bands = append(bands, tariff.Band{
			TariffID:       tariffID,
			ConsumptionMin: b.ConsumptionMin,
			ConsumptionMax: b.ConsumptionMax,
			UnitPrice:      b.UnitPrice,
		})
	}
	return bands
}

type TariffResponse struct {
	*tariff.Tariff
}

type ListTariffsResponse struct {
	Items []*TariffResponse `json:"items"`
	Total int               `json:"total"`
}
