package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/config"
	"github.com/recruitsss/recruitsss-backend/internal/handlers"
	"github.com/recruitsss/recruitsss-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	paymentHandler *handlers.PaymentHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Public job browsing; an attached token keeps the role-scoped view.
	api.Get("/jobs", middleware.OptionalActor(db, cfg), jobHandler.List)
	api.Get("/jobs/:id", middleware.OptionalActor(db, cfg), jobHandler.Get)

	protected := api.Group("", middleware.JWTProtected(cfg), middleware.LoadActor(db))

	// Accounts and profiles
	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/me", userHandler.UpdateMe)
	protected.Get("/users", userHandler.List)
	protected.Get("/users/:id", userHandler.Get)
	protected.Put("/users/:id/status", userHandler.SetStatus)
	protected.Put("/candidates/me", userHandler.UpdateCandidateProfile)
	protected.Post("/candidates/me/cv", userHandler.UploadCV)
	protected.Get("/candidates/:id", userHandler.GetCandidate)
	protected.Put("/recruiters/me", userHandler.UpdateRecruiterProfile)

	// Job catalog write side
	protected.Post("/jobs", jobHandler.Create)
	protected.Get("/my-jobs", jobHandler.MyJobs)
	protected.Put("/jobs/:id", jobHandler.Update)
	protected.Post("/jobs/:id/publish", jobHandler.Publish)
	protected.Post("/jobs/:id/close", jobHandler.Close)

	// Saved jobs
	protected.Post("/saved-jobs", jobHandler.SaveJob)
	protected.Get("/saved-jobs", jobHandler.ListSavedJobs)
	protected.Delete("/saved-jobs/:id", jobHandler.UnsaveJob)

	// Applications
	protected.Post("/applications", applicationHandler.Apply)
	protected.Get("/applications", applicationHandler.List)
	protected.Get("/applications/:id", applicationHandler.Get)
	protected.Post("/applications/:id/view", applicationHandler.MarkViewed)
	protected.Post("/applications/:id/shortlist", applicationHandler.Shortlist)
	protected.Post("/applications/:id/schedule-interview", applicationHandler.ScheduleInterview)
	protected.Post("/applications/:id/reject", applicationHandler.Reject)
	protected.Post("/applications/:id/accept", applicationHandler.Accept)
	protected.Post("/applications/:id/withdraw", applicationHandler.Withdraw)

	// Payments
	protected.Post("/payments", paymentHandler.Create)
	protected.Get("/payments", paymentHandler.List)
	protected.Get("/payments/:id", paymentHandler.Get)
	protected.Post("/payments/:id/verify", paymentHandler.Verify)
	protected.Post("/payments/:id/reject", paymentHandler.Reject)
	protected.Post("/payments/:id/refund", paymentHandler.Refund)

	// Notifications
	protected.Get("/notifications", notificationHandler.List)
	protected.Get("/notifications/unread-count", notificationHandler.UnreadCount)
	protected.Post("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)
}
