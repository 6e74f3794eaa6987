package repository

import (
	"sync"

	"shoplite/shop-api/internal/model"
)

// OrderStore is the append-only in-memory order table. Ids are assigned
// monotonically and orders are immutable once appended.
type OrderStore struct {
	mu     sync.Mutex
	orders []model.Order
	nextID int64
}

func NewOrderStore() *OrderStore {
	return &OrderStore{nextID: 1}
}

// Append assigns the next id to the order, stores it, and returns it.
func (s *OrderStore) Append(o model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, o)
	return o
}

// All returns a snapshot of every order in insertion order.
func (s *OrderStore) All() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Reset clears the table. Test support only.
func (s *OrderStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.nextID = 1
}
