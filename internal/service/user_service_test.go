package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"shoplite/shop-api/internal/auth"
	"shoplite/shop-api/internal/repository"
	"shoplite/shop-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func intPtr(v int) *int {
	return &v
}

func newUserService() (*service.UserService, *repository.UserStore, *auth.JWTIssuer) {
	users := repository.NewUserStore()
	// MinCost keeps the hashing fast in tests; the salting behaviour is the
	// same at every cost.
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTIssuer("test-secret", time.Hour)
	return service.NewUserService(users, hasher, tokens), users, tokens
}

func validUser() service.CreateUserRequest {
	return service.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "123456",
		Age:      intPtr(25),
	}
}

func TestCreateUser_Success(t *testing.T) {
	svc, _, _ := newUserService()

	view, err := svc.CreateUser(validUser())

	require.NoError(t, err)
	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, 25, view.Age)

	// The serialised view must not leak the password in any form.
	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "123456")
}

func TestCreateUser_HashesAreSalted(t *testing.T) {
	svc, users, _ := newUserService()

	first := validUser()
	second := validUser()
	second.Email = "bob@example.com"

	_, err := svc.CreateUser(first)
	require.NoError(t, err)
	_, err = svc.CreateUser(second)
	require.NoError(t, err)

	a, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	b, err := users.FindByEmail("bob@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, "123456", a.PasswordHash)
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash, "same plaintext must hash differently")
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	svc, users, _ := newUserService()

	for _, email := range []string{"bob", "bob@", "@example.com", "bob@example"} {
		req := validUser()
		req.Email = email
		_, err := svc.CreateUser(req)
		assert.ErrorIs(t, err, service.ErrInvalidEmail, "email %q", email)
	}
	assert.Empty(t, users.All())
}

func TestCreateUser_Underage(t *testing.T) {
	svc, users, _ := newUserService()

	req := validUser()
	req.Age = intPtr(15)
	_, err := svc.CreateUser(req)

	assert.ErrorIs(t, err, service.ErrUnderage)
	assert.Empty(t, users.All())
}

func TestCreateUser_MissingFields(t *testing.T) {
	svc, _, _ := newUserService()

	cases := []service.CreateUserRequest{
		{Email: "a@b.co", Password: "x", Age: intPtr(20)},
		{Name: "A", Password: "x", Age: intPtr(20)},
		{Name: "A", Email: "a@b.co", Age: intPtr(20)},
		{Name: "A", Email: "a@b.co", Password: "x"},
	}
	for i, req := range cases {
		_, err := svc.CreateUser(req)
		assert.ErrorIs(t, err, service.ErrMissingUserFields, "case %d", i)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.CreateUser(validUser())
	require.NoError(t, err)

	_, err = svc.CreateUser(validUser())
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, _, tokens := newUserService()

	view, err := svc.CreateUser(validUser())
	require.NoError(t, err)

	result, err := svc.Login("alice@example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, view, result.User)

	claims, err := tokens.Decode(result.Token)
	require.NoError(t, err)
	assert.Equal(t, view.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.CreateUser(validUser())
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same error, so a
	// caller cannot tell which half was wrong.
	_, wrongPass := svc.Login("alice@example.com", "nope")
	_, unknown := svc.Login("nobody@example.com", "123456")

	assert.ErrorIs(t, wrongPass, service.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, service.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestGetAllUsers(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.CreateUser(validUser())
	require.NoError(t, err)
	second := validUser()
	second.Name = "Bob"
	second.Email = "bob@example.com"
	_, err = svc.CreateUser(second)
	require.NoError(t, err)

	views := svc.GetAllUsers()
	require.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Name)
	assert.Equal(t, "Bob", views[1].Name)
}

func TestResetUsers(t *testing.T) {
	svc, users, _ := newUserService()

	_, err := svc.CreateUser(validUser())
	require.NoError(t, err)

	svc.ResetUsers()
	assert.Empty(t, users.All())

	// Ids restart from 1 after a reset.
	view, err := svc.CreateUser(validUser())
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.ID)
}
