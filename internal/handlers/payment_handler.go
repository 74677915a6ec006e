package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
)

type PaymentHandler struct {
	payments PaymentAPI
}

func NewPaymentHandler(payments PaymentAPI) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	payment, err := h.payments.Create(actor.FromCtx(c), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Payment submitted", "payment": payment})
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	payment, err := h.payments.Get(actor.FromCtx(c), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"payment": payment})
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	payments, meta, err := h.payments.List(actor.FromCtx(c), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"payments": payments, "meta": meta})
}

func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	payment, err := h.payments.Verify(actor.FromCtx(c), c.Params("id"), &req)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment verified", "payment": payment})
}

func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	payment, err := h.payments.Reject(actor.FromCtx(c), c.Params("id"), req.Reason)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment rejected", "payment": payment})
}

func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	var req dto.RefundPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}
	payment, err := h.payments.Refund(actor.FromCtx(c), c.Params("id"), req.Reason)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment refunded", "payment": payment})
}
