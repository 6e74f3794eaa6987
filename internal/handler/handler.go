package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router *chi.Mux
}

func NewHandler(orderHandler *OrderHandler, userHandler *UserHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	h := &Handler{
		router: router,
	}

	h.registerRoutes(orderHandler, userHandler)
	return h
}

func (h *Handler) registerRoutes(orderHandler *OrderHandler, userHandler *UserHandler) {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.GetAllOrders)
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.GetAllUsers)
		r.Post("/users/login", userHandler.Login)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type successResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
