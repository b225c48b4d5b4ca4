package reading

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Repository provides access to meter readings.
type Repository interface {
	// Create persists a reading, failing if one already exists for the
	// same meter and period.
	Create(ctx context.Context, r *Reading) (*Reading, error)
	Get(ctx context.Context, id int64) (*Reading, error)
	List(ctx context.Context) ([]*Reading, error)
	ListByPeriod(ctx context.Context, period types.Period) ([]*Reading, error)
	// ListUnbilledByPeriod returns the readings in the period that have no
	// invoice yet.
	ListUnbilledByPeriod(ctx context.Context, period types.Period) ([]*Reading, error)
	Update(ctx context.Context, r *Reading) (*Reading, error)
	Delete(ctx context.Context, id int64) error
}
