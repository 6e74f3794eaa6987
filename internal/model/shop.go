package model

import "time"

type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderStatusCompleted is the only status an order can hold; orders are
// created completed and never transition.
const OrderStatusCompleted = "completed"

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialised
	Age          int    `json:"age"`
}

// UserView is a User stripped of its password hash, safe to return to
// clients.
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// View returns the external representation of u.
func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age}
}
