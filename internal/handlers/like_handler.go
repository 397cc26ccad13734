package handlers

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Like handles POST /likes/like. Repeating a like without an unlike in
// between is an error; the client shipped expecting a 500 for it, so that
// status is kept for wire compatibility.
func (h *LikeHandler) Like(c *fiber.Ctx) error {
	uid, postID, ok := h.parse(c)
	if !ok {
		return nil
	}

	if err := h.likes.LikePost(uid, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyLiked):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Already liked",
			})
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Post not found",
			})
		}
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Liked"})
}

// Unlike handles POST /likes/unlike.
func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	uid, postID, ok := h.parse(c)
	if !ok {
		return nil
	}

	if err := h.likes.UnlikePost(uid, postID); err != nil {
		if errors.Is(err, services.ErrNotLiked) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Not liked",
			})
		}
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Unliked"})
}

// parse resolves the caller and the post id; on failure it writes the error
// response and reports ok=false.
func (h *LikeHandler) parse(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	uid, err := identity.UID(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return uuid.Nil, uuid.Nil, false
	}

	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
		return uuid.Nil, uuid.Nil, false
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return uid, postID, true
}
