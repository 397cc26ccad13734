package routes

import (
	"time"

	"github.com/animalfamily/animal-family-backend/internal/config"
	"github.com/animalfamily/animal-family-backend/internal/handlers"
	"github.com/animalfamily/animal-family-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Setup mounts the HTTP surface. Paths match what the mobile client ships
// with, so changes here are breaking.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	postHandler *handlers.PostHandler,
	adoptionHandler *handlers.AdoptionHandler,
	reportHandler *handlers.ReportHandler,
	likeHandler *handlers.LikeHandler,
	blockHandler *handlers.BlockHandler,
	messageHandler *handlers.MessageHandler,
	adminHandler *handlers.AdminHandler,
) {
	// General rate limiter: 60 req/min per IP.
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limiter.
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	app.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	jwt := middleware.JWTProtected(cfg)

	// Content
	app.Post("/posts", jwt, postHandler.CreatePost)
	app.Get("/feed/posts", jwt, postHandler.GetFeed)
	app.Post("/posts/:id/comments", jwt, postHandler.AddComment)
	app.Get("/posts/:id/comments", jwt, postHandler.GetComments)
	app.Post("/adoptions", jwt, adoptionHandler.CreateListing)
	app.Get("/adoptions", jwt, adoptionHandler.ListAvailable)

	// Moderation, user side
	app.Post("/reports", jwt, reportHandler.CreateReport)
	app.Post("/likes/like", jwt, likeHandler.Like)
	app.Post("/likes/unlike", jwt, likeHandler.Unlike)
	app.Post("/blocks", jwt, blockHandler.BlockUser)
	app.Delete("/blocks/:id", jwt, blockHandler.UnblockUser)
	app.Get("/messages", jwt, messageHandler.ListMessages)
	app.Post("/messages/:id/read", jwt, messageHandler.MarkRead)

	// Moderator action surface. The role check runs before any handler.
	admin := app.Group("/admin", jwt, middleware.AdminRequired(db))
	admin.Get("/reports", adminHandler.ListReports)
	admin.Delete("/reports/:id", adminHandler.IgnoreReport)
	admin.Post("/content/visibility", adminHandler.SetVisibility)
	admin.Post("/content/delete", adminHandler.DeleteContent)
	admin.Post("/content/status", adminHandler.UpdateStatus)
	admin.Post("/content/reports/ignore", adminHandler.IgnoreContentReports)
	admin.Post("/user/block", adminHandler.BanUser)
	admin.Post("/adoption/approve", adminHandler.ApproveAdoption)
}
