package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/config"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

var (
	errInactiveAccount = errors.New("account is not active")
	errNoProfile       = errors.New("no profile for this account")
)

// resolveActor loads the user row and its role profile. A user missing
// the profile row for their role cannot exercise role actions.
func resolveActor(db *gorm.DB, userID uuid.UUID) (*actor.Actor, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, errInactiveAccount
	}

	a := &actor.Actor{User: &user}
	switch user.Role {
	case models.RoleCandidate:
		var p models.Candidate
		if err := db.First(&p, "id = ?", user.ID).Error; err == nil {
			a.Candidate = &p
		}
	case models.RoleRecruiter:
		var p models.Recruiter
		if err := db.First(&p, "id = ?", user.ID).Error; err == nil {
			a.Recruiter = &p
		}
	case models.RoleAdmin:
		var p models.Admin
		if err := db.First(&p, "id = ?", user.ID).Error; err == nil {
			a.Admin = &p
		}
	}
	if a.Candidate == nil && a.Recruiter == nil && a.Admin == nil {
		return nil, errNoProfile
	}
	return a, nil
}

func resolveFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInactiveAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Account is not active",
		})
	case errors.Is(err, errNoProfile):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "No profile for this account",
		})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// LoadActor resolves the JWT subject into a full Actor (user row plus the
// role profile) and stores it in context locals. Runs after JWTProtected.
func LoadActor(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := actor.UserIDFromToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		a, err := resolveActor(db, userID)
		if err != nil {
			return resolveFailure(c, err)
		}
		actor.Store(c, a)
		return c.Next()
	}
}

// OptionalActor resolves the actor when a bearer token is present and
// lets anonymous requests through. Used on public browse endpoints so
// authenticated callers keep their role-scoped view.
func OptionalActor(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		a, err := resolveActor(db, userID)
		if err != nil {
			return resolveFailure(c, err)
		}
		actor.Store(c, a)
		return c.Next()
	}
}
