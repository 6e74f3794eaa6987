package service

import (
	"errors"
	"math"
	"time"

	"shoplite/shop-api/internal/model"
	"shoplite/shop-api/internal/repository"
)

var (
	ErrMissingOrderFields = errors.New("UserId, productId, and quantity are required fields")
	ErrInvalidQuantity    = errors.New("Quantity must be a positive integer")
	ErrProductNotFound    = repository.ErrProductNotFound
	ErrInsufficientStock  = repository.ErrInsufficientStock
)

// CreateOrderRequest carries a decoded order request. Fields are pointers
// so an absent key is distinguishable from a zero value; quantity is a
// float so fractional input can be rejected rather than silently truncated.
type CreateOrderRequest struct {
	UserID    *int64   `json:"userId"`
	ProductID *int64   `json:"productId"`
	Quantity  *float64 `json:"quantity"`
}

type OrderService struct {
	products *repository.ProductStore
	orders   *repository.OrderStore
}

func NewOrderService(products *repository.ProductStore, orders *repository.OrderStore) *OrderService {
	return &OrderService{products: products, orders: orders}
}

// CreateOrder validates the request, checks the catalog, decrements stock
// and appends a completed order. Validation runs in a fixed order and the
// first failing rule wins; a rejected order leaves all state unchanged.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (model.Order, error) {
	if req.UserID == nil || req.ProductID == nil || req.Quantity == nil {
		return model.Order{}, ErrMissingOrderFields
	}
	qty := *req.Quantity
	// The upper bound keeps the int64 conversion below from overflowing.
	if qty <= 0 || qty != math.Trunc(qty) || qty >= 1<<63 {
		return model.Order{}, ErrInvalidQuantity
	}
	quantity := int64(qty)

	product, err := s.products.FindByID(*req.ProductID)
	if err != nil {
		return model.Order{}, err
	}
	if quantity > product.Stock {
		return model.Order{}, ErrInsufficientStock
	}

	// The store re-checks under its lock, so concurrent orders cannot
	// jointly overdraw stock past the snapshot read above.
	product, err = s.products.DecrementStock(*req.ProductID, quantity)
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		UserID:    *req.UserID,
		ProductID: *req.ProductID,
		Quantity:  quantity,
		Total:     product.Price * float64(quantity),
		Status:    model.OrderStatusCompleted,
		CreatedAt: time.Now(),
	}
	return s.orders.Append(order), nil
}

// GetAllOrders returns every order in insertion order.
func (s *OrderService) GetAllOrders() []model.Order {
	return s.orders.All()
}

// ResetOrders clears the order table. Test support only.
func (s *OrderService) ResetOrders() {
	s.orders.Reset()
}

// ResetProducts reloads the seed catalog. Test support only.
func (s *OrderService) ResetProducts() {
	s.products.Reset()
}
