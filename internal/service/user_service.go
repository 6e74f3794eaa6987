package service

import (
	"errors"
	"fmt"
	"regexp"

	"shoplite/shop-api/internal/auth"
	"shoplite/shop-api/internal/model"
	"shoplite/shop-api/internal/repository"
)

var (
	ErrMissingUserFields  = errors.New("Name, email, password, and age are required fields")
	ErrInvalidEmail       = errors.New("Invalid email format")
	ErrUnderage           = errors.New("User must be at least 18 years old")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CreateUserRequest carries a decoded registration request. Age is a
// pointer so an absent key is distinguishable from zero.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  model.UserView
}

type UserService struct {
	users  *repository.UserStore
	hasher auth.Hasher
	tokens auth.TokenIssuer
}

func NewUserService(users *repository.UserStore, hasher auth.Hasher, tokens auth.TokenIssuer) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// CreateUser validates the request, hashes the password and stores the
// record. The returned view never carries the password in any form.
func (s *UserService) CreateUser(req CreateUserRequest) (model.UserView, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Age == nil {
		return model.UserView{}, ErrMissingUserFields
	}
	if !emailPattern.MatchString(req.Email) {
		return model.UserView{}, ErrInvalidEmail
	}
	if *req.Age < 18 {
		return model.UserView{}, ErrUnderage
	}
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return model.UserView{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := s.users.Append(model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Age:          *req.Age,
	})
	return user.View(), nil
}

// Login verifies credentials and issues a signed token. A missing account
// and a wrong password produce the same error so callers cannot probe
// which half failed.
func (s *UserService) Login(email, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return LoginResult{Token: token, User: user.View()}, nil
}

// GetAllUsers returns a view of every user in insertion order.
func (s *UserService) GetAllUsers() []model.UserView {
	users := s.users.All()
	views := make([]model.UserView, len(users))
	for i, u := range users {
		views[i] = u.View()
	}
	return views
}

// ResetUsers clears the user table. Test support only.
func (s *UserService) ResetUsers() {
	s.users.Reset()
}
