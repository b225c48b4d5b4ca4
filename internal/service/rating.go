package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// RatingService computes the charge for a consumption quantity under a
// tariff's stepped-rate schedule. It is the single rating code path: both
// single invoice creation and bulk generation go through RateConsumption so
// identical (tariff, consumption) pairs always produce identical totals.
type RatingService interface {
	RateConsumption(ctx context.Context, tariffID int64, consumption decimal.Decimal) (decimal.Decimal, error)
}

type ratingService struct {
	ServiceParams
}

func NewRatingService(params ServiceParams) RatingService {
	return &ratingService{ServiceParams: params}
}

// RateConsumption walks the tariff's bands in ascending order and
// accumulates the stepped charge:
//
//   - the base band (min == 0) contributes its unit price as a flat charge,
//     however much of it was used;
//   - every other fully consumed band contributes unit price times its
//     inclusive unit count;
//   - the band containing the consumption contributes unit price times the
//     units used within it, and ends the walk;
//   - consumption beyond the last band is charged at the last band's rate.
//
// Consumption is truncated to whole cubic meters for band lookup. Every
// intermediate result is rounded to cents.
func (s *ratingService) RateConsumption(ctx context.Context, tariffID int64, consumption decimal.Decimal) (decimal.Decimal, error) {
	if consumption.IsNegative() {
		return decimal.Zero, ierr.NewError("consumption cannot be negative").
			WithHint("Consumption must be zero or greater").
			WithReportableDetails(map[string]interface{}{
				"consumo_m3": consumption.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	t, err := s.TariffRepo.GetWithBands(ctx, tariffID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(t.Bands) == 0 {
		return decimal.Zero, ierr.NewError("tariff has no consumption bands").
			WithHint("Configure consumption bands for the tariff before billing").
			WithReportableDetails(map[string]interface{}{
				"tarifa_id": tariffID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	bands := tariff.SortBands(t.Bands)
	units := consumption.IntPart()

	total := decimal.Zero
	for _, band := range bands {
		if band.ConsumptionMax != nil && units > *band.ConsumptionMax {
			// Band fully consumed.
			total = types.RoundMoney(total.Add(s.fullBandCharge(band)))
			continue
		}
		if band.Contains(units) {
			// Final band: charge only the units used within it.
			total = types.RoundMoney(total.Add(s.partialBandCharge(band, units)))
			return total, nil
		}
		// units < band.ConsumptionMin cannot happen with a contiguous,
		// zero-based band set; treat it as fully below and stop.
		return total, nil
	}

	// Consumption exceeds every defined band: charge the excess beyond the
	// last band's maximum at the last band's rate.
	last := bands[len(bands)-1]
	excess := units - *last.ConsumptionMax
	overflow := types.RoundMoney(last.UnitPrice.Mul(decimal.NewFromInt(excess)))
	total = types.RoundMoney(total.Add(overflow))

	s.Logger.Debugw("consumption beyond last band, overflow policy applied",
		"tarifa_id", tariffID,
		"consumo_m3", consumption.String(),
		"excedente", excess,
	)
	return total, nil
}

func (s *ratingService) fullBandCharge(band tariff.Band) decimal.Decimal {
	if band.IsBase() {
		// The base band is a flat fee regardless of usage inside it.
		return types.RoundMoney(band.UnitPrice)
	}
	return types.RoundMoney(band.UnitPrice.Mul(decimal.NewFromInt(band.Units())))
}

func (s *ratingService) partialBandCharge(band tariff.Band, units int64) decimal.Decimal {
	if band.IsBase() {
		return types.RoundMoney(band.UnitPrice)
	}
	used := units - band.ConsumptionMin + 1
	return types.RoundMoney(band.UnitPrice.Mul(decimal.NewFromInt(used)))
}
