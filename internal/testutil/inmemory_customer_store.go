package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryCustomerStore implements customer.Repository.
type InMemoryCustomerStore struct {
	store *InMemoryStore[*customer.Customer]
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{store: NewInMemoryStore[*customer.Customer]()}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCustomerStore) Create(_ context.Context, c *customer.Customer) (*customer.Customer, error) {
	stored := copyCustomer(c)
	stored.ID = s.store.Insert(stored)
	return copyCustomer(stored), nil
}

func (s *InMemoryCustomerStore) Get(_ context.Context, id int64) (*customer.Customer, error) {
	c, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("customer not found").
			WithHint("Customer not found").
			WithReportableDetails(map[string]interface{}{"cliente_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (s *InMemoryCustomerStore) List(_ context.Context) ([]*customer.Customer, error) {
	customers := s.store.List()
	out := make([]*customer.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, copyCustomer(c))
	}
	return out, nil
}

func (s *InMemoryCustomerStore) Update(_ context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := s.store.Update(c.ID, copyCustomer(c)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Customer not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (s *InMemoryCustomerStore) Delete(_ context.Context, id int64) error {
	if err := s.store.Delete(id); err != nil {
		return ierr.WithError(err).
			WithHint("Customer not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
