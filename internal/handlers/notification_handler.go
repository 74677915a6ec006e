package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
)

type NotificationHandler struct {
	notifications NotificationAPI
}

func NewNotificationHandler(notifications NotificationAPI) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page, limit := dto.Pagination(pageQuery(c))
	items, total, err := h.notifications.List(actor.FromCtx(c), page, limit)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{
		"notifications": items,
		"meta":          dto.ListMeta{Total: total, Page: page, Limit: limit},
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	n, err := h.notifications.MarkRead(actor.FromCtx(c), id)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read", "notification": n})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	updated, err := h.notifications.MarkAllRead(actor.FromCtx(c))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read", "updated": updated})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifications.UnreadCount(actor.FromCtx(c))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}
