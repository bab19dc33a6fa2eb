package enrollmentRoutes

import (
	enrollmentController "shikkha/controllers/enrollment"
	promoController "shikkha/controllers/promo"
	"shikkha/middleware"
	courseValidator "shikkha/validators/course"
	enrollmentValidator "shikkha/validators/enrollment"
	promoValidator "shikkha/validators/promo"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up checkout, promo preview and the
// caller's enrollment list.
func SetupEnrollmentRoutes(app *fiber.App) {
	group := app.Group("/enrollment", middleware.JWTMiddleware)

	group.Post("/checkout", enrollmentValidator.Checkout(), enrollmentController.Checkout)
	group.Get("/list", enrollmentValidator.ListEnrollments(), enrollmentController.GetEnrollments)
	group.Post("/course/:id/complete", courseValidator.CourseID(), enrollmentController.CompleteEnrollment)

	promoGroup := app.Group("/promo", middleware.JWTMiddleware)
	promoGroup.Post("/apply", promoValidator.ApplyPromo(), promoController.ApplyPromo)
}
