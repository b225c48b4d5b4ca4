package tariff

import (
	"sort"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// SortBands orders bands by ascending ConsumptionMin, the order the rating
// walk expects.
func SortBands(bands []Band) []Band {
	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ConsumptionMin < sorted[j].ConsumptionMin
	})
	return sorted
}

// ValidateBands enforces the band set invariants at configuration time:
// at least one band, first band starting at zero, inclusive bounds with
// max >= min, contiguity (next min = previous max + 1), no overlaps, and
// at most one unbounded band which must be the last.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return ierr.NewError("tariff requires at least one consumption band").
			WithHint("Define at least one consumption band").
			Mark(ierr.ErrValidation)
	}

	sorted := SortBands(bands)

	if sorted[0].ConsumptionMin != 0 {
		return ierr.NewError("first band must start at consumption 0").
			WithHint("The base band must cover consumption starting at 0").
			WithReportableDetails(map[string]interface{}{
				"consumo_min": sorted[0].ConsumptionMin,
			}).
			Mark(ierr.ErrValidation)
	}

	for i, band := range sorted {
		if band.ConsumptionMin < 0 {
			return ierr.NewError("band minimum cannot be negative").
				WithHint("Consumption boundaries must be non-negative").
				WithReportableDetails(map[string]interface{}{
					"consumo_min": band.ConsumptionMin,
				}).
				Mark(ierr.ErrValidation)
		}
		if band.UnitPrice.IsNegative() {
			return ierr.NewError("band price cannot be negative").
				WithHint("Unit prices must be non-negative").
				WithReportableDetails(map[string]interface{}{
					"consumo_min":     band.ConsumptionMin,
					"precio_unitario": band.UnitPrice.String(),
				}).
				Mark(ierr.ErrValidation)
		}

		if band.ConsumptionMax == nil {
			if i != len(sorted)-1 {
				return ierr.NewError("only the last band may be unbounded").
					WithHint("An open-ended band must be the highest band").
					WithReportableDetails(map[string]interface{}{
						"consumo_min": band.ConsumptionMin,
					}).
					Mark(ierr.ErrValidation)
			}
			continue
		}

		if *band.ConsumptionMax < band.ConsumptionMin {
			return ierr.NewError("band maximum is below its minimum").
				WithHint("Band boundaries are inclusive and max must be >= min").
				WithReportableDetails(map[string]interface{}{
					"consumo_min": band.ConsumptionMin,
					"consumo_max": *band.ConsumptionMax,
				}).
				Mark(ierr.ErrValidation)
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if next.ConsumptionMin != *band.ConsumptionMax+1 {
				return ierr.NewError("bands must be contiguous and non-overlapping").
					WithHint("Each band must start exactly one unit above the previous band's maximum").
					WithReportableDetails(map[string]interface{}{
						"consumo_max":           *band.ConsumptionMax,
						"siguiente_consumo_min": next.ConsumptionMin,
					}).
					Mark(ierr.ErrValidation)
			}
		}
	}

	return nil
}
