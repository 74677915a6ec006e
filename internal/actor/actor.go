// Package actor resolves the authenticated user and their role profile
// once per request. Handlers and services read the resolved Actor instead
// of re-deriving role or profile per permission check.
package actor

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

const localsKey = "actor"

// Actor is the authenticated caller. Exactly one of the profile pointers
// is non-nil, matching User.Role.
type Actor struct {
	User      *models.User
	Candidate *models.Candidate
	Recruiter *models.Recruiter
	Admin     *models.Admin
}

func (a *Actor) ID() uuid.UUID {
	return a.User.ID
}

func (a *Actor) Role() string {
	return a.User.Role
}

func (a *Actor) IsCandidate() bool { return a.Candidate != nil }
func (a *Actor) IsRecruiter() bool { return a.Recruiter != nil }
func (a *Actor) IsAdmin() bool     { return a.Admin != nil }

// Store saves the resolved actor in Fiber context locals.
func Store(c *fiber.Ctx, a *Actor) {
	c.Locals(localsKey, a)
}

// FromCtx returns the actor resolved by the middleware, or nil for
// unauthenticated requests.
func FromCtx(c *fiber.Ctx) *Actor {
	if a, ok := c.Locals(localsKey).(*Actor); ok {
		return a
	}
	return nil
}

// UserIDFromToken extracts the user UUID from JWT claims in context.
func UserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
