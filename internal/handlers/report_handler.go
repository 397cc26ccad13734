package handlers

import (
	"errors"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// CreateReport handles POST /reports.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	uid, err := identity.UID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report",
		})
	}

	targetType, err := models.ParseTargetType(req.TargetType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report",
		})
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report",
		})
	}

	if err := h.reports.SubmitReport(uid, targetType, targetID, req.Reason); err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: true, Message: "Daily report limit reached",
			})
		case errors.Is(err, services.ErrAlreadyReported):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Already reported",
			})
		case errors.Is(err, services.ErrTargetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Target not found",
			})
		case errors.Is(err, services.ErrInvalidReport):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid report",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Reported"})
}
