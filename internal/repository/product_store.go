package repository

import (
	"errors"
	"sync"

	"shoplite/shop-api/internal/model"
)

var (
	ErrProductNotFound   = errors.New("Product not found")
	ErrInsufficientStock = errors.New("Insufficient stock")
)

// seedProducts is the catalog loaded on startup and on Reset.
func seedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10},
		{ID: 2, Name: "Phone", Price: 599.99, Stock: 5},
		{ID: 3, Name: "Headphones", Price: 199.99, Stock: 20},
	}
}

// ProductStore is the in-memory product catalog. Stock is its only mutable
// field and is only changed through DecrementStock.
type ProductStore struct {
	mu       sync.Mutex
	products map[int64]model.Product
}

func NewProductStore() *ProductStore {
	s := &ProductStore{}
	s.Reset()
	return s
}

// FindByID returns a copy of the product, or ErrProductNotFound.
func (s *ProductStore) FindByID(id int64) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

// DecrementStock atomically checks availability and reduces stock. The
// check and the decrement happen under one lock hold, so concurrent orders
// can never jointly drive stock below zero. Returns the product as it was
// before the decrement.
func (s *ProductStore) DecrementStock(id, quantity int64) (model.Product, error) {
	if quantity <= 0 {
		return model.Product{}, errors.New("decrement quantity must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	if quantity > p.Stock {
		return model.Product{}, ErrInsufficientStock
	}
	before := p
	p.Stock -= quantity
	s.products[id] = p
	return before, nil
}

// Reset reloads the seed catalog. Test support only; never reachable from
// request handling.
func (s *ProductStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[int64]model.Product)
	for _, p := range seedProducts() {
		s.products[p.ID] = p
	}
}
