package placement

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/pkg/errors"
)

// Store holds placed orders for the lifetime of the process. Orders are an
// in-memory concern here; there is no durable backend behind this service.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{orders: make(map[uuid.UUID]*domain.Order)}
}

// Put saves an order.
func (s *Store) Put(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// Get returns a copy of the order with the given ID.
func (s *Store) Get(id uuid.UUID) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	cp := *o
	cp.Items = append([]domain.LineItem(nil), o.Items...)
	return &cp, nil
}

// Advance moves an order to the given status. It rejects backward or
// skipping transitions.
func (s *Store) Advance(id uuid.UUID, to domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	if !o.Status.CanTransitionTo(to) {
		return &errors.ErrInvalidStateTransition{From: o.Status, To: to}
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// advanceAll moves every undelivered order one stage forward and returns
// how many orders moved.
func (s *Store) advanceAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved := 0
	for _, o := range s.orders {
		if next, ok := o.Status.Next(); ok {
			o.Status = next
			o.UpdatedAt = time.Now().UTC()
			moved++
		}
	}
	return moved
}

// List returns copies of all stored orders, newest first.
func (s *Store) List() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := *o
		cp.Items = append([]domain.LineItem(nil), o.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
