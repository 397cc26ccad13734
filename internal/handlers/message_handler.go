package handlers

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ListMessages handles GET /messages, listing the caller moderation notices.
func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messages, err := h.messages.ListForUser(uid)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"messages": messages})
}

// MarkRead handles POST /messages/:id/read.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message ID",
		})
	}

	if err := h.messages.MarkRead(uid, messageID); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Message not found",
			})
		}
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Marked as read"})
}
