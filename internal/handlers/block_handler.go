package handlers

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BlockHandler struct {
	blocks *services.BlockService
}

func NewBlockHandler(blocks *services.BlockService) *BlockHandler {
	return &BlockHandler{blocks: blocks}
}

// BlockUser handles POST /blocks.
func (h *BlockHandler) BlockUser(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	blockedUID, err := uuid.Parse(req.BlockedUID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	if err := h.blocks.BlockUser(uid, blockedUID); err != nil {
		if errors.Is(err, services.ErrSelfBlock) || errors.Is(err, services.ErrAlreadyBlocked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User blocked"})
}

// UnblockUser handles DELETE /blocks/:id.
func (h *BlockHandler) UnblockUser(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	blockedUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.blocks.UnblockUser(uid, blockedUID); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "User unblocked"})
}
