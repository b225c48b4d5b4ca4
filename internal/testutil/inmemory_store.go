package testutil

import (
	"sort"
	"sync"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryStore is the shared storage engine behind the per-entity test
// stores. Keys imitate the database's autoincrement ids.
type InMemoryStore[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{items: make(map[int64]T)}
}

// Insert stores the item under a fresh id and returns the id.
func (s *InMemoryStore[T]) Insert(item T) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.items[s.nextID] = item
	return s.nextID
}

func (s *InMemoryStore[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// List returns all items ordered by id.
func (s *InMemoryStore[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out
}

func (s *InMemoryStore[T]) Update(id int64, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ierr.NewError("record not found").Mark(ierr.ErrNotFound)
	}
	s.items[id] = item
	return nil
}

func (s *InMemoryStore[T]) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ierr.NewError("record not found").Mark(ierr.ErrNotFound)
	}
	delete(s.items, id)
	return nil
}

func (s *InMemoryStore[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
