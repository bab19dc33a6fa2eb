package communityRoutes

import (
	doubtController "shikkha/controllers/doubt"
	reviewController "shikkha/controllers/review"
	supportController "shikkha/controllers/support"
	"shikkha/middleware"
	"shikkha/models"
	doubtValidator "shikkha/validators/doubt"
	reviewValidator "shikkha/validators/review"
	supportValidator "shikkha/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupCommunityRoutes sets up reviews, doubts and support tickets.
func SetupCommunityRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review", middleware.JWTMiddleware)
	reviewGroup.Post("/", reviewValidator.CreateReview(), reviewController.CreateReview)
	reviewGroup.Post("/report", reviewValidator.ReportReview(), reviewController.ReportReview)

	moderator := middleware.RequireRole(models.RoleModerator, models.RoleAdmin)
	reviewGroup.Put("/report/:id/resolve", moderator, reviewValidator.ReportID(), reviewController.ResolveReport)

	doubtGroup := app.Group("/doubt", middleware.JWTMiddleware)
	doubtGroup.Post("/", doubtValidator.CreateDoubt(), doubtController.CreateDoubt)
	doubtGroup.Get("/mine", doubtController.GetMyDoubts)

	solver := middleware.RequireRole(models.RoleDoubtSolver, models.RoleTeacher)
	doubtGroup.Get("/open", solver, doubtController.GetOpenDoubts)
	doubtGroup.Post("/:id/claim", solver, doubtValidator.DoubtID(), doubtController.ClaimDoubt)
	doubtGroup.Post("/:id/answer", solver, doubtValidator.DoubtID(), doubtValidator.AnswerDoubt(), doubtController.AnswerDoubt)

	ticketGroup := app.Group("/support", middleware.JWTMiddleware)
	ticketGroup.Post("/ticket", supportValidator.CreateTicket(), supportController.CreateTicket)
	ticketGroup.Get("/tickets", supportController.GetMyTickets)
	ticketGroup.Put("/ticket/:id/resubmit", supportValidator.TicketID(), supportValidator.CreateTicket(), supportController.ResubmitTicket)
}
