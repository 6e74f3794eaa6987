package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStore_FindByID(t *testing.T) {
	s := NewProductStore()

	p, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 999.99, p.Price)
	assert.Equal(t, int64(10), p.Stock)

	_, err = s.FindByID(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductStore_DecrementStock(t *testing.T) {
	s := NewProductStore()

	before, err := s.DecrementStock(1, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), before.Stock)

	p, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Stock)

	_, err = s.DecrementStock(1, 7)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = s.DecrementStock(42, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductStore_DecrementStock_RejectsNonPositive(t *testing.T) {
	s := NewProductStore()

	// The store defends its own contract: a zero or negative decrement can
	// never inflate stock, whatever the caller passed.
	for _, qty := range []int64{0, -1, -9223372036854775808} {
		_, err := s.DecrementStock(1, qty)
		assert.Error(t, err, "quantity %d", qty)
	}

	p, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Stock)
}

func TestProductStore_DecrementStock_NeverNegative(t *testing.T) {
	s := NewProductStore()

	// 40 goroutines compete for 20 units of product 3; stock must land on
	// exactly zero with 20 winners.
	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.DecrementStock(3, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 20, succeeded)

	p, err := s.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock)
}

func TestProductStore_Reset(t *testing.T) {
	s := NewProductStore()

	_, err := s.DecrementStock(2, 5)
	require.NoError(t, err)

	s.Reset()

	p, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)
}
