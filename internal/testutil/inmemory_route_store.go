package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryRouteStore implements route.Repository.
type InMemoryRouteStore struct {
	store *InMemoryStore[*route.Route]
}

func NewInMemoryRouteStore() *InMemoryRouteStore {
	return &InMemoryRouteStore{store: NewInMemoryStore[*route.Route]()}
}

func copyRoute(r *route.Route) *route.Route {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}

func (s *InMemoryRouteStore) Create(_ context.Context, r *route.Route) (*route.Route, error) {
	stored := copyRoute(r)
	stored.ID = s.store.Insert(stored)
	return copyRoute(stored), nil
}

func (s *InMemoryRouteStore) Get(_ context.Context, id int64) (*route.Route, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("route not found").
			WithHint("Route not found").
			WithReportableDetails(map[string]interface{}{"ruta_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyRoute(r), nil
}

func (s *InMemoryRouteStore) List(_ context.Context) ([]*route.Route, error) {
	routes := s.store.List()
	out := make([]*route.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, copyRoute(r))
	}
	return out, nil
}

func (s *InMemoryRouteStore) Update(_ context.Context, r *route.Route) (*route.Route, error) {
	if err := s.store.Update(r.ID, copyRoute(r)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Route not found").
			Mark(ierr.ErrNotFound)
	}
	return copyRoute(r), nil
}

func (s *InMemoryRouteStore) Delete(_ context.Context, id int64) error {
	if err := s.store.Delete(id); err != nil {
		return ierr.WithError(err).
			WithHint("Route not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
