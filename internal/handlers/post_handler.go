package handlers

import (
	"errors"
	"strconv"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PostHandler struct {
	posts    *services.PostService
	comments *services.CommentService
}

func NewPostHandler(posts *services.PostService, comments *services.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid data",
		})
	}

	if _, err := h.posts.CreatePost(uid, req.Caption, req.ImageURL); err != nil {
		if errors.Is(err, services.ErrInvalidPost) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid data",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Post created"})
}

// GetFeed handles GET /feed/posts?limit=&cursor=.
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	var cursor *int64
	if raw := c.Query("cursor"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid cursor",
			})
		}
		cursor = &ms
	}

	items, next, err := h.posts.GetFeed(uid, limit, cursor)
	if err != nil {
		return err
	}

	return c.JSON(dto.FeedResponse{Items: items, NextCursor: next})
}

// AddComment handles POST /posts/:id/comments.
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	comment, err := h.comments.AddComment(uid, postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidComment):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Post not found",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /posts/:id/comments.
func (h *PostHandler) GetComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post ID",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	comments, err := h.comments.ListForPost(postID, limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"comments": comments})
}
