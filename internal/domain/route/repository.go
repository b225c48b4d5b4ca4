package route

import "context"

// Repository provides access to route records.
type Repository interface {
	Create(ctx context.Context, r *Route) (*Route, error)
	Get(ctx context.Context, id int64) (*Route, error)
	List(ctx context.Context) ([]*Route, error)
	Update(ctx context.Context, r *Route) (*Route, error)
	Delete(ctx context.Context, id int64) error
}
