package testutil

import (
	"context"
	"sync"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryTariffStore implements tariff.Repository.
type InMemoryTariffStore struct {
	store *InMemoryStore[*tariff.Tariff]

	mu     sync.Mutex
	bands  map[int64][]tariff.Band
	bandID int64
}

func NewInMemoryTariffStore() *InMemoryTariffStore {
	return &InMemoryTariffStore{
		store: NewInMemoryStore[*tariff.Tariff](),
		bands: make(map[int64][]tariff.Band),
	}
}

func copyTariff(t *tariff.Tariff) *tariff.Tariff {
	if t == nil {
		return nil
	}
	copied := *t
	copied.Bands = append([]tariff.Band(nil), t.Bands...)
	return &copied
}

func (s *InMemoryTariffStore) Create(_ context.Context, t *tariff.Tariff) (*tariff.Tariff, error) {
	stored := copyTariff(t)
	stored.ID = s.store.Insert(stored)
	return copyTariff(stored), nil
}

func (s *InMemoryTariffStore) Get(_ context.Context, id int64) (*tariff.Tariff, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("tariff not found").
			WithHint("Tariff not found").
			WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
			Mark(ierr.ErrNotFound)
	}
	out := copyTariff(t)
	out.Bands = nil
	return out, nil
}

func (s *InMemoryTariffStore) GetWithBands(ctx context.Context, id int64) (*tariff.Tariff, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	t.Bands = tariff.SortBands(s.bands[id])
	s.mu.Unlock()
	return t, nil
}

func (s *InMemoryTariffStore) List(_ context.Context) ([]*tariff.Tariff, error) {
	tariffs := s.store.List()
	out := make([]*tariff.Tariff, 0, len(tariffs))
	for _, t := range tariffs {
		c := copyTariff(t)
		c.Bands = nil
		out = append(out, c)
	}
	return out, nil
}

func (s *InMemoryTariffStore) Update(_ context.Context, t *tariff.Tariff) (*tariff.Tariff, error) {
	if err := s.store.Update(t.ID, copyTariff(t)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Tariff not found").
			Mark(ierr.ErrNotFound)
	}
	return copyTariff(t), nil
}

func (s *InMemoryTariffStore) ReplaceBands(_ context.Context, tariffID int64, bands []tariff.Band) ([]tariff.Band, error) {
	if _, ok := s.store.Get(tariffID); !ok {
		return nil, ierr.NewError("tariff not found").
			WithHint("Tariff not found").
			WithReportableDetails(map[string]interface{}{"tarifa_id": tariffID}).
			Mark(ierr.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]tariff.Band, 0, len(bands))
	for _, b := range bands {
		s.bandID++
		b.ID = s.bandID
		b.TariffID = tariffID
		stored = append(stored, b)
	}
	s.bands[tariffID] = stored
	return tariff.SortBands(stored), nil
}

func (s *InMemoryTariffStore) Delete(_ context.Context, id int64) error {
	if err := s.store.Delete(id); err != nil {
		return ierr.WithError(err).
			WithHint("Tariff not found").
			Mark(ierr.ErrNotFound)
	}
	s.mu.Lock()
	delete(s.bands, id)
	s.mu.Unlock()
	return nil
}
