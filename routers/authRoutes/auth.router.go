package authRoutes

import (
	authController "shikkha/controllers/auth"
	notificationController "shikkha/controllers/notification"
	"shikkha/middleware"
	authValidator "shikkha/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup/login and the caller's own profile
// and notification endpoints.
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	userGroup.Get("/notifications", middleware.JWTMiddleware, notificationController.GetNotifications)
	userGroup.Put("/notifications/:id/read", middleware.JWTMiddleware, notificationController.MarkNotificationRead)
}
