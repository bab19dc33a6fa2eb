package affiliateRoutes

import (
	affiliateController "shikkha/controllers/affiliate"
	"shikkha/middleware"
	"shikkha/models"
	affiliateValidator "shikkha/validators/affiliate"

	"github.com/gofiber/fiber/v2"
)

// SetupAffiliateRoutes sets up the affiliate/seller earnings dashboard.
func SetupAffiliateRoutes(app *fiber.App) {
	affiliate := middleware.RequireRole(models.RoleAffiliate, models.RoleSeller)
	group := app.Group("/affiliate", middleware.JWTMiddleware, affiliate)

	group.Get("/summary", affiliateController.GetSummary)
	group.Get("/payouts", affiliateController.GetPayouts)
	group.Post("/payout", affiliateValidator.RequestPayout(), affiliateController.RequestPayout)
}
