package middleware

import (
	"github.com/animalfamily/animal-family-backend/internal/dto"
	"github.com/animalfamily/animal-family-backend/internal/identity"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates the moderator action surface. The user record's Role
// field is the only authority; it is checked here, before any handler runs,
// so no admin mutation is reachable by a non-admin.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := identity.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.Select("role").First(&user, "id = ?", uid).Error; err != nil || user.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admins only",
			})
		}

		return c.Next()
	}
}
