package meter

import "context"

// Repository provides access to meter records.
type Repository interface {
	Create(ctx context.Context, m *Meter) (*Meter, error)
	Get(ctx context.Context, id int64) (*Meter, error)
	List(ctx context.Context) ([]*Meter, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Meter, error)
	Update(ctx context.Context, m *Meter) (*Meter, error)
	Delete(ctx context.Context, id int64) error
}
