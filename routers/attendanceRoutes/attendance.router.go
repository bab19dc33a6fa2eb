package attendanceRoutes

import (
	attendanceController "shikkha/controllers/attendance"
	"shikkha/middleware"
	"shikkha/models"
	attendanceValidator "shikkha/validators/attendance"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up roster marking and attendance queries.
func SetupAttendanceRoutes(app *fiber.App) {
	marker := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)
	group := app.Group("/attendance", middleware.JWTMiddleware)

	group.Post("/mark", marker, attendanceValidator.Mark(), attendanceController.MarkAttendance)
	group.Get("/", marker, attendanceController.GetAttendance)
	group.Get("/summary", attendanceController.GetStudentSummary)
}
