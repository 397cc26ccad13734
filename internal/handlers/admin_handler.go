package handlers

import (
	"errors"
	"strconv"

	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/animalfamily/animal-family-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler exposes the moderator action surface. Authorization has
// already happened in the AdminRequired middleware.
type AdminHandler struct {
	admin   *services.AdminService
	reports *services.ReportService
}

func NewAdminHandler(admin *services.AdminService, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{admin: admin, reports: reports}
}

// ListReports handles GET /admin/reports.
func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	reports, err := h.reports.ListReports(limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"reports": reports})
}

// SetVisibility handles POST /admin/content/visibility.
func (h *AdminHandler) SetVisibility(c *fiber.Ctx) error {
	var req dto.SetVisibilityRequest
	if err := c.BodyParser(&req); err != nil || req.Hidden == nil {
		return badRequest(c)
	}

	targetType, targetID, ok := parseTarget(req.TargetType, req.TargetID)
	if !ok {
		return badRequest(c)
	}

	if err := h.admin.SetContentVisibility(targetType, targetID, *req.Hidden); err != nil {
		return adminError(c, err)
	}

	msg := "Unhidden"
	if *req.Hidden {
		msg = "Hidden"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// BanUser handles POST /admin/user/block.
func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	var req dto.BanUserRequest
	if err := c.BodyParser(&req); err != nil || req.Blocked == nil {
		return badRequest(c)
	}

	uid, err := uuid.Parse(req.UID)
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.BanUser(uid, *req.Blocked); err != nil {
		return adminError(c, err)
	}

	msg := "User unblocked"
	if *req.Blocked {
		msg = "User blocked"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// ApproveAdoption handles POST /admin/adoption/approve.
func (h *AdminHandler) ApproveAdoption(c *fiber.Ctx) error {
	var req dto.ApproveAdoptionRequest
	if err := c.BodyParser(&req); err != nil || req.Approved == nil {
		return badRequest(c)
	}

	adoptionID, err := uuid.Parse(req.AdoptionID)
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.ApproveAdoption(adoptionID, *req.Approved); err != nil {
		return adminError(c, err)
	}

	msg := "Adoption rejected"
	if *req.Approved {
		msg = "Adoption approved"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

// DeleteContent handles POST /admin/content/delete.
func (h *AdminHandler) DeleteContent(c *fiber.Ctx) error {
	var req dto.DeleteContentRequest
	if err := c.BodyParser(&req); err != nil || req.Reason == "" {
		return badRequest(c)
	}

	targetType, targetID, ok := parseTarget(req.TargetType, req.TargetID)
	if !ok {
		return badRequest(c)
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.DeleteContent(targetType, targetID, ownerID, req.Reason); err != nil {
		return adminError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Content deleted"})
}

// UpdateStatus handles POST /admin/content/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	targetType, targetID, ok := parseTarget(req.TargetType, req.TargetID)
	if !ok {
		return badRequest(c)
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.UpdateStatus(targetType, targetID, ownerID, req.Status, req.Reason); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return badRequest(c)
		}
		return adminError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Status updated"})
}

// IgnoreReport handles DELETE /admin/reports/:id.
func (h *AdminHandler) IgnoreReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c)
	}

	if err := h.admin.IgnoreReport(reportID); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Report ignored"})
}

// IgnoreContentReports handles POST /admin/content/reports/ignore.
func (h *AdminHandler) IgnoreContentReports(c *fiber.Ctx) error {
	var req dto.IgnoreContentReportsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	targetType, targetID, ok := parseTarget(req.TargetType, req.TargetID)
	if !ok {
		return badRequest(c)
	}

	if err := h.admin.IgnoreContentReports(targetType, targetID); err != nil {
		return adminError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Reports ignored"})
}

func parseTarget(rawType, rawID string) (models.TargetType, uuid.UUID, bool) {
	targetType, err := models.ParseTargetType(rawType)
	if err != nil {
		return "", uuid.Nil, false
	}
	targetID, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, false
	}
	return targetType, targetID, true
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request",
	})
}

func adminError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTargetNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return err
}
