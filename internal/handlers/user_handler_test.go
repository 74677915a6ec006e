package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

type UserAPIMock struct{ mock.Mock }

func (m *UserAPIMock) Get(a *actor.Actor, id string) (*models.User, error) {
	args := m.Called(a, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserAPIMock) List(a *actor.Actor, role string, page, limit int) ([]models.User, *dto.ListMeta, error) {
	args := m.Called(a, role, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(*dto.ListMeta), args.Error(2)
}
func (m *UserAPIMock) UpdateMe(a *actor.Actor, req *dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(a, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserAPIMock) SetStatus(a *actor.Actor, id, status string) (*models.User, error) {
	args := m.Called(a, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserAPIMock) UpdateCandidateProfile(a *actor.Actor, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(a, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}
func (m *UserAPIMock) UpdateRecruiterProfile(a *actor.Actor, req *dto.UpdateRecruiterRequest) (*models.Recruiter, error) {
	args := m.Called(a, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recruiter), args.Error(1)
}
func (m *UserAPIMock) GetCandidate(a *actor.Actor, id string) (*models.Candidate, error) {
	args := m.Called(a, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func setupUserApp(a *actor.Actor, api UserAPI) *fiber.App {
	app := newTestApp(a)
	h := NewUserHandler(api)
	app.Get("/users/me", h.Me)
	app.Put("/users/me", h.UpdateMe)
	app.Put("/users/:id/status", h.SetStatus)
	app.Put("/candidates/me", h.UpdateCandidateProfile)
	app.Put("/recruiters/me", h.UpdateRecruiterProfile)
	return app
}

func TestMePayloadIncludesRecruiterProfile(t *testing.T) {
	a := recruiterActor()
	app := setupUserApp(a, new(UserAPIMock))

	resp := doJSON(t, app, "GET", "/users/me", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotNil(t, body["user"])
	assert.NotNil(t, body["recruiter"])
	assert.Nil(t, body["candidate"])
}

func TestUpdateRecruiterProfile(t *testing.T) {
	t.Run("empty company name is a bad request", func(t *testing.T) {
		a := recruiterActor()
		api := new(UserAPIMock)
		api.On("UpdateRecruiterProfile", a, mock.Anything).Return(nil, services.ErrCompanyNameRequired)

		app := setupUserApp(a, api)
		resp := doJSON(t, app, "PUT", "/recruiters/me", fiber.Map{"company_name": ""})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["error"])
		api.AssertExpectations(t)
	})

	t.Run("updates company fields", func(t *testing.T) {
		a := recruiterActor()
		api := new(UserAPIMock)
		api.On("UpdateRecruiterProfile", a, mock.Anything).
			Return(&models.Recruiter{CompanyName: "Dakar Digital"}, nil)

		app := setupUserApp(a, api)
		resp := doJSON(t, app, "PUT", "/recruiters/me", fiber.Map{"company_name": "Dakar Digital"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		api.AssertExpectations(t)
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("unknown status is a bad request", func(t *testing.T) {
		a := adminActor()
		id := uuid.New().String()
		api := new(UserAPIMock)
		api.On("SetStatus", a, id, "FROZEN").Return(nil, services.ErrInvalidUserStatus)

		app := setupUserApp(a, api)
		resp := doJSON(t, app, "PUT", "/users/"+id+"/status", fiber.Map{"status": "FROZEN"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		api.AssertExpectations(t)
	})

	t.Run("suspends a user", func(t *testing.T) {
		a := adminActor()
		id := uuid.New()
		api := new(UserAPIMock)
		api.On("SetStatus", a, id.String(), models.UserStatusSuspended).
			Return(&models.User{ID: id, Status: models.UserStatusSuspended}, nil)

		app := setupUserApp(a, api)
		resp := doJSON(t, app, "PUT", "/users/"+id.String()+"/status", fiber.Map{"status": models.UserStatusSuspended})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		api.AssertExpectations(t)
	})
}
