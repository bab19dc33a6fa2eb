package courseRoutes

import (
	courseController "shikkha/controllers/course"
	reviewController "shikkha/controllers/review"
	"shikkha/middleware"
	"shikkha/models"
	courseValidator "shikkha/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public course browsing and author-facing
// course management.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public published catalog
	courseGroup.Get("/list", courseValidator.CourseList(), courseController.GetPublishedCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), courseController.GetCourseDetails)
	courseGroup.Get("/:id/reviews", courseValidator.CourseID(), reviewController.GetCourseReviews)

	// Author-facing management
	author := middleware.RequireRole(models.RoleTeacher, models.RoleSeller, models.RoleAdmin)
	authorGroup := app.Group("/author/course", middleware.JWTMiddleware, author)
	authorGroup.Post("/", courseValidator.CreateCourse(), courseController.CreateCourse)
	authorGroup.Put("/:id", courseValidator.CourseID(), courseValidator.CreateCourse(), courseController.UpdateCourse)
	authorGroup.Post("/:id/submit", courseValidator.CourseID(), courseController.SubmitCourse)
}
