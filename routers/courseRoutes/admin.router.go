package courseRoutes

import (
	affiliateController "shikkha/controllers/affiliate"
	courseController "shikkha/controllers/course"
	promoController "shikkha/controllers/promo"
	supportController "shikkha/controllers/support"
	"shikkha/middleware"
	"shikkha/models"
	affiliateValidator "shikkha/validators/affiliate"
	courseValidator "shikkha/validators/course"
	promoValidator "shikkha/validators/promo"
	supportValidator "shikkha/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin dashboard surface: course
// moderation, promo management, payout settlement and ticket review.
func SetupAdminRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, admin)

	// Course moderation
	adminGroup.Get("/courses/pending", courseController.AdminListPendingCourses)
	adminGroup.Put("/course/:id/review", courseValidator.CourseID(), courseController.AdminReviewCourse)
	adminGroup.Delete("/course/:id", courseValidator.CourseID(), courseController.AdminDeleteCourse)

	// Promo codes
	adminGroup.Post("/promo", promoValidator.CreatePromo(), promoController.AdminCreatePromo)
	adminGroup.Get("/promo/list", promoController.AdminListPromos)
	adminGroup.Put("/promo/:id/deactivate", promoValidator.PromoID(), promoController.AdminDeactivatePromo)

	// Payout settlement
	adminGroup.Get("/payouts/pending", affiliateController.AdminListPendingPayouts)
	adminGroup.Put("/payout/:id/settle", affiliateValidator.PayoutID(), affiliateController.AdminSettlePayout)

	// Support tickets
	adminGroup.Put("/ticket/:id/review", supportValidator.TicketID(), supportController.AdminReviewTicket)
}
