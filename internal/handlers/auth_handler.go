package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

type AuthHandler struct {
	auth AuthAPI
}

func NewAuthHandler(auth AuthAPI) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.auth.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return fail(c, fiber.StatusConflict, err.Error())
		}
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.auth.Login(&req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.auth.Refresh(&req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	if err := h.auth.Logout(&req); err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
