package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

// newTestApp returns a Fiber app that injects the given actor into every
// request, standing in for the JWT and actor middleware.
func newTestApp(a *actor.Actor) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if a != nil {
			actor.Store(c, a)
		}
		return c.Next()
	})
	return app
}

func candidateActor() *actor.Actor {
	id := uuid.New()
	return &actor.Actor{
		User:      &models.User{ID: id, Email: "fatou@example.com", FirstName: "Fatou", LastName: "Sall", Role: models.RoleCandidate, Status: models.UserStatusActive},
		Candidate: &models.Candidate{ID: id},
	}
}

func recruiterActor() *actor.Actor {
	id := uuid.New()
	return &actor.Actor{
		User:      &models.User{ID: id, Email: "moussa@example.com", FirstName: "Moussa", LastName: "Ndiaye", Role: models.RoleRecruiter, Status: models.UserStatusActive},
		Recruiter: &models.Recruiter{ID: id, CompanyName: "Teranga Tech"},
	}
}

func adminActor() *actor.Actor {
	id := uuid.New()
	return &actor.Actor{
		User:  &models.User{ID: id, Email: "awa@example.com", FirstName: "Awa", LastName: "Diop", Role: models.RoleAdmin, Status: models.UserStatusActive},
		Admin: &models.Admin{ID: id, CanManagePayments: true},
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
