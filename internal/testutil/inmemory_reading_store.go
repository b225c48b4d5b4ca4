package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// InMemoryReadingStore implements reading.Repository. When wired to an
// invoice store it can answer the unbilled-readings query the bulk
// generator depends on.
type InMemoryReadingStore struct {
	store    *InMemoryStore[*reading.Reading]
	invoices *InMemoryInvoiceStore
}

func NewInMemoryReadingStore() *InMemoryReadingStore {
	return &InMemoryReadingStore{store: NewInMemoryStore[*reading.Reading]()}
}

// WithInvoiceStore links the invoice store used to resolve billed readings.
func (s *InMemoryReadingStore) WithInvoiceStore(invoices *InMemoryInvoiceStore) *InMemoryReadingStore {
	s.invoices = invoices
	return s
}

func copyReading(r *reading.Reading) *reading.Reading {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}

func (s *InMemoryReadingStore) Create(_ context.Context, r *reading.Reading) (*reading.Reading, error) {
	for _, existing := range s.store.List() {
		if existing.MeterID == r.MeterID && existing.Period == r.Period {
			return nil, ierr.NewError("reading already exists for this meter and period").
				WithHint("Only one reading per meter and period is allowed").
				WithReportableDetails(map[string]interface{}{
					"medidor_id": r.MeterID,
					"periodo":    r.Period.String(),
				}).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	stored := copyReading(r)
	stored.ID = s.store.Insert(stored)
	return copyReading(stored), nil
}

func (s *InMemoryReadingStore) Get(_ context.Context, id int64) (*reading.Reading, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("reading not found").
			WithHint("Reading not found").
			WithReportableDetails(map[string]interface{}{"lectura_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyReading(r), nil
}

func (s *InMemoryReadingStore) List(_ context.Context) ([]*reading.Reading, error) {
	readings := s.store.List()
	out := make([]*reading.Reading, 0, len(readings))
	for _, r := range readings {
		out = append(out, copyReading(r))
	}
	return out, nil
}

func (s *InMemoryReadingStore) ListByPeriod(_ context.Context, period types.Period) ([]*reading.Reading, error) {
	out := make([]*reading.Reading, 0)
	for _, r := range s.store.List() {
		if r.Period == period {
			out = append(out, copyReading(r))
		}
	}
	return out, nil
}

func (s *InMemoryReadingStore) ListUnbilledByPeriod(ctx context.Context, period types.Period) ([]*reading.Reading, error) {
	readings, err := s.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if s.invoices == nil {
		return readings, nil
	}
	out := make([]*reading.Reading, 0, len(readings))
	for _, r := range readings {
		if !s.invoices.hasInvoiceForReading(r.ID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *InMemoryReadingStore) Update(_ context.Context, r *reading.Reading) (*reading.Reading, error) {
	if err := s.store.Update(r.ID, copyReading(r)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Reading not found").
			Mark(ierr.ErrNotFound)
	}
	return copyReading(r), nil
}

func (s *InMemoryReadingStore) Delete(_ context.Context, id int64) error {
	if err := s.store.Delete(id); err != nil {
		return ierr.WithError(err).
			WithHint("Reading not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
