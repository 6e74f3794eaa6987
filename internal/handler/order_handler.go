package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoplite/shop-api/internal/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.CreateOrder(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMissingOrderFields),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrInsufficientStock):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			// Log error internally in production
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeSuccess(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.svc.GetAllOrders())
}
