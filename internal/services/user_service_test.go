package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

func recruiterOnly() *actor.Actor {
	id := uuid.New()
	return &actor.Actor{
		User:      &models.User{ID: id, Role: models.RoleRecruiter, Status: models.UserStatusActive},
		Recruiter: &models.Recruiter{ID: id, CompanyName: "Teranga Tech"},
	}
}

func adminOnly() *actor.Actor {
	id := uuid.New()
	return &actor.Actor{
		User:  &models.User{ID: id, Role: models.RoleAdmin, Status: models.UserStatusActive},
		Admin: &models.Admin{ID: id},
	}
}

func TestUpdateRecruiterProfileValidation(t *testing.T) {
	svc := NewUserService(nil)

	t.Run("company name cannot be blanked", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdateRecruiterProfile(recruiterOnly(), &dto.UpdateRecruiterRequest{CompanyName: &empty})
		assert.ErrorIs(t, err, ErrCompanyNameRequired)
	})

	t.Run("non-recruiters are forbidden", func(t *testing.T) {
		_, err := svc.UpdateRecruiterProfile(adminOnly(), &dto.UpdateRecruiterRequest{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestSetStatusValidation(t *testing.T) {
	svc := NewUserService(nil)

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.SetStatus(adminOnly(), uuid.New().String(), "FROZEN")
		assert.ErrorIs(t, err, ErrInvalidUserStatus)
	})

	t.Run("only admins may change a status", func(t *testing.T) {
		_, err := svc.SetStatus(recruiterOnly(), uuid.New().String(), models.UserStatusSuspended)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
