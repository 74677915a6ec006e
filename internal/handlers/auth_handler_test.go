package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

type AuthAPIMock struct{ mock.Mock }

func (m *AuthAPIMock) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}
func (m *AuthAPIMock) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}
func (m *AuthAPIMock) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}
func (m *AuthAPIMock) Logout(req *dto.LogoutRequest) error {
	return m.Called(req).Error(0)
}

func setupAuthApp(api AuthAPI) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(api)
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/refresh", h.Refresh)
	return app
}

func TestRegisterHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		api := new(AuthAPIMock)
		api.On("Register", mock.Anything).Return(&dto.AuthResponse{
			User:    &models.User{Email: "fatou@example.com", Role: models.RoleCandidate},
			Message: "Account created",
		}, nil)

		app := setupAuthApp(api)
		resp := doJSON(t, app, "POST", "/auth/register", dto.RegisterRequest{
			Email: "fatou@example.com", Password: "motdepasse1", PasswordConfirm: "motdepasse1",
			FirstName: "Fatou", LastName: "Sall", Role: models.RoleCandidate,
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		api := new(AuthAPIMock)
		api.On("Register", mock.Anything).Return(nil, services.ErrEmailTaken)

		app := setupAuthApp(api)
		resp := doJSON(t, app, "POST", "/auth/register", dto.RegisterRequest{Email: "dup@example.com"})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("validation failure is a bad request", func(t *testing.T) {
		api := new(AuthAPIMock)
		api.On("Register", mock.Anything).Return(nil, errors.New("password must be at least 8 characters"))

		app := setupAuthApp(api)
		resp := doJSON(t, app, "POST", "/auth/register", dto.RegisterRequest{Email: "short@example.com", Password: "abc"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		api := new(AuthAPIMock)
		api.On("Login", mock.Anything).Return(nil, services.ErrInvalidCredentials)

		app := setupAuthApp(api)
		resp := doJSON(t, app, "POST", "/auth/login", dto.LoginRequest{Email: "x@example.com", Password: "wrong"})

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("suspended account", func(t *testing.T) {
		api := new(AuthAPIMock)
		api.On("Login", mock.Anything).Return(nil, services.ErrAccountInactive)

		app := setupAuthApp(api)
		resp := doJSON(t, app, "POST", "/auth/login", dto.LoginRequest{Email: "x@example.com", Password: "right"})

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestRefreshHandler(t *testing.T) {
	api := new(AuthAPIMock)
	api.On("Refresh", mock.Anything).Return(nil, services.ErrInvalidToken)

	app := setupAuthApp(api)
	resp := doJSON(t, app, "POST", "/auth/refresh", dto.RefreshRequest{RefreshToken: "stale"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
