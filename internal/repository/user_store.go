package repository

import (
	"errors"
	"sync"

	"shoplite/shop-api/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore is the in-memory user table, keyed by id with an email lookup.
type UserStore struct {
	mu     sync.Mutex
	users  []model.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Append assigns the next id to the user, stores it, and returns it.
func (s *UserStore) Append(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// FindByEmail returns the user with the given email, or ErrUserNotFound.
func (s *UserStore) FindByEmail(email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// All returns a snapshot of every user in insertion order.
func (s *UserStore) All() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Reset clears the table. Test support only.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.nextID = 1
}
