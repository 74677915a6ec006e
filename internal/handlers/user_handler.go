package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

type UserHandler struct {
	users UserAPI
}

func NewUserHandler(users UserAPI) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the caller's account and role profile in one payload.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	a := actor.FromCtx(c)
	resp := fiber.Map{"user": a.User}
	switch {
	case a.IsCandidate():
		resp["candidate"] = a.Candidate
	case a.IsRecruiter():
		resp["recruiter"] = a.Recruiter
	case a.IsAdmin():
		resp["admin"] = a.Admin
	}
	return c.JSON(resp)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	users, meta, err := h.users.List(actor.FromCtx(c), c.Query("role"), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"users": users, "meta": meta})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	user, err := h.users.UpdateMe(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated", "user": user})
}

func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	user, err := h.users.SetStatus(actor.FromCtx(c), c.Params("id"), req.Status)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "User status updated", "user": user})
}

func (h *UserHandler) UpdateCandidateProfile(c *fiber.Ctx) error {
	var req dto.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	candidate, err := h.users.UpdateCandidateProfile(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated", "candidate": candidate})
}

func (h *UserHandler) UpdateRecruiterProfile(c *fiber.Ctx) error {
	var req dto.UpdateRecruiterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	recruiter, err := h.users.UpdateRecruiterProfile(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated", "recruiter": recruiter})
}

func (h *UserHandler) GetCandidate(c *fiber.Ctx) error {
	candidate, err := h.users.GetCandidate(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"candidate": candidate})
}

// UploadCV will accept CV files once object storage is wired in.
func (h *UserHandler) UploadCV(c *fiber.Ctx) error {
	return failFrom(c, services.ErrCVUploadUnavailable)
}
