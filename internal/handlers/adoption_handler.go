package handlers

import (
	"errors"
	"strconv"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdoptionHandler struct {
	adoptions *services.AdoptionService
}

func NewAdoptionHandler(adoptions *services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions}
}

// CreateListing handles POST /adoptions.
func (h *AdoptionHandler) CreateListing(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAdoptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	listing, err := h.adoptions.CreateListing(uid, req.Title, req.Species, req.Description, req.City)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAdoption) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// ListAvailable handles GET /adoptions.
func (h *AdoptionHandler) ListAvailable(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	listings, err := h.adoptions.ListAvailable(limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"adoptions": listings})
}
