package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryMeterStore implements meter.Repository.
type InMemoryMeterStore struct {
	store *InMemoryStore[*meter.Meter]
}

func NewInMemoryMeterStore() *InMemoryMeterStore {
	return &InMemoryMeterStore{store: NewInMemoryStore[*meter.Meter]()}
}

func copyMeter(m *meter.Meter) *meter.Meter {
	if m == nil {
		return nil
	}
	copied := *m
	return &copied
}

func (s *InMemoryMeterStore) Create(_ context.Context, m *meter.Meter) (*meter.Meter, error) {
	for _, existing := range s.store.List() {
		if existing.SerialNumber == m.SerialNumber {
			return nil, ierr.NewError("meter serial number already exists").
				WithHint("A meter with this serial number is already registered").
				WithReportableDetails(map[string]interface{}{"numero_serie": m.SerialNumber}).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	stored := copyMeter(m)
	stored.ID = s.store.Insert(stored)
	return copyMeter(stored), nil
}

func (s *InMemoryMeterStore) Get(_ context.Context, id int64) (*meter.Meter, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("meter not found").
			WithHint("Meter not found").
			WithReportableDetails(map[string]interface{}{"medidor_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyMeter(m), nil
}

func (s *InMemoryMeterStore) List(_ context.Context) ([]*meter.Meter, error) {
	meters := s.store.List()
	out := make([]*meter.Meter, 0, len(meters))
	for _, m := range meters {
		out = append(out, copyMeter(m))
	}
	return out, nil
}

func (s *InMemoryMeterStore) ListByCustomer(_ context.Context, customerID int64) ([]*meter.Meter, error) {
	out := make([]*meter.Meter, 0)
	for _, m := range s.store.List() {
		if m.CustomerID == customerID {
			out = append(out, copyMeter(m))
		}
	}
	return out, nil
}

func (s *InMemoryMeterStore) Update(_ context.Context, m *meter.Meter) (*meter.Meter, error) {
	if err := s.store.Update(m.ID, copyMeter(m)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Meter not found").
			Mark(ierr.ErrNotFound)
	}
	return copyMeter(m), nil
}

func (s *InMemoryMeterStore) Delete(_ context.Context, id int64) error {
	if err := s.store.Delete(id); err != nil {
		return ierr.WithError(err).
			WithHint("Meter not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
