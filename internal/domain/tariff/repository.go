package tariff

import "context"

// Repository provides access to tariffs and their consumption bands.
type Repository interface {
	Create(ctx context.Context, t *Tariff) (*Tariff, error)
	Get(ctx context.Context, id int64) (*Tariff, error)
	// GetWithBands returns the tariff with its bands sorted by
	// ascending ConsumptionMin.
	GetWithBands(ctx context.Context, id int64) (*Tariff, error)
	List(ctx context.Context) ([]*Tariff, error)
	Update(ctx context.Context, t *Tariff) (*Tariff, error)
	// ReplaceBands atomically swaps the tariff's band set. Callers must
	// have validated the new set first.
	ReplaceBands(ctx context.Context, tariffID int64, bands []Band) ([]Band, error)
	Delete(ctx context.Context, id int64) error
}
