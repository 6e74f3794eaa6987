package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoplite/shop-api/internal/auth"
	"shoplite/shop-api/internal/config"
	"shoplite/shop-api/internal/handler"
	"shoplite/shop-api/internal/repository"
	"shoplite/shop-api/internal/service"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Stores
	productStore := repository.NewProductStore()
	orderStore := repository.NewOrderStore()
	userStore := repository.NewUserStore()

	// 3. Setup Logic
	// Logic - Orders
	orderService := service.NewOrderService(productStore, orderStore)
	orderHandler := handler.NewOrderHandler(orderService)

	// Logic - Users
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(userStore, hasher, tokens)
	userHandler := handler.NewUserHandler(userService)

	h := handler.NewHandler(orderHandler, userHandler)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	go func() {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
