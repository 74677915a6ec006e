package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
)

type ApplicationHandler struct {
	applications ApplicationAPI
}

func NewApplicationHandler(applications ApplicationAPI) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	app, err := h.applications.Apply(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Application submitted", "application": app})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	app, err := h.applications.Get(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"application": app})
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	apps, meta, err := h.applications.List(actor.FromCtx(c), c.Query("job_offer_id"), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"applications": apps, "meta": meta})
}

func (h *ApplicationHandler) MarkViewed(c *fiber.Ctx) error {
	app, err := h.applications.MarkViewed(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application marked as viewed", "application": app})
}

func (h *ApplicationHandler) Shortlist(c *fiber.Ctx) error {
	app, err := h.applications.Shortlist(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application shortlisted", "application": app})
}

func (h *ApplicationHandler) ScheduleInterview(c *fiber.Ctx) error {
	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	app, err := h.applications.ScheduleInterview(actor.FromCtx(c), c.Params("id"), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Interview scheduled", "application": app})
}

func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	app, err := h.applications.Reject(actor.FromCtx(c), c.Params("id"), req.Reason)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application rejected", "application": app})
}

func (h *ApplicationHandler) Accept(c *fiber.Ctx) error {
	app, err := h.applications.Accept(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application accepted", "application": app})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	app, err := h.applications.Withdraw(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application withdrawn", "application": app})
}
