package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequestBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "Invalid request body")
}

// failFrom maps service and workflow errors onto HTTP statuses. Workflow
// conflicts and validation failures are 400s; out-of-scope reads surface
// as 404 so callers cannot tell other accounts' data exists.
func failFrom(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "You do not have permission to perform this action")
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAccountInactive):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrCVUploadUnavailable):
		return fail(c, fiber.StatusNotImplemented, err.Error())
	case errors.Is(err, services.ErrInvalidUserStatus),
		errors.Is(err, services.ErrCompanyNameRequired),
		errors.Is(err, services.ErrSubscriptionRequired),
		errors.Is(err, services.ErrInvalidContractType),
		errors.Is(err, services.ErrJobTitleRequired),
		errors.Is(err, services.ErrAlreadySaved),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrJobNotAcceptingApplications),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, models.ErrJobNotDraft),
		errors.Is(err, models.ErrJobNotPublished),
		errors.Is(err, models.ErrSalaryRange),
		errors.Is(err, models.ErrApplicationWithdrawn),
		errors.Is(err, models.ErrApplicationDecided),
		errors.Is(err, models.ErrCannotWithdraw),
		errors.Is(err, models.ErrInterviewDateRequired),
		errors.Is(err, models.ErrInterviewDateInPast),
		errors.Is(err, models.ErrPaymentNotPending),
		errors.Is(err, models.ErrPaymentNotCompleted),
		errors.Is(err, models.ErrInvalidAmount):
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func pageQuery(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", 20)
}
