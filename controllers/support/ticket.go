package supportController

import (
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	supportValidator "shikkha/validators/support"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket opens a support ticket for the caller.
func CreateTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*supportValidator.CreateTicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:  userID,
		Subject: reqData.Subject,
		Message: reqData.Message,
		Status:  models.TicketPending,
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket created successfully!", ticket)
}

// GetMyTickets lists the caller's tickets newest first.
func GetMyTickets(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

// ResubmitTicket moves a REJECTED ticket back to PENDING with an
// updated message.
func ResubmitTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ticketID := c.Locals("ticketID").(int)

	reqData, ok := c.Locals("validatedTicket").(*supportValidator.CreateTicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?",
		ticketID, userID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if !ticket.Status.CanTransitionTo(models.TicketPending) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only rejected tickets can be resubmitted!", nil)
	}

	updates := map[string]interface{}{
		"subject": reqData.Subject,
		"message": reqData.Message,
		"status":  models.TicketPending,
	}
	if err := database.Database.Db.Model(&ticket).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resubmit ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket resubmitted successfully!", ticket)
}

// AdminReviewTicket approves or rejects a PENDING ticket.
func AdminReviewTicket(c *fiber.Ctx) error {
	ticketID := c.Locals("ticketID").(int)

	var reqData struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	next := models.TicketRejected
	if reqData.Approve {
		next = models.TicketApproved
	}

	if !ticket.Status.CanTransitionTo(next) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is not pending!", nil)
	}

	if err := database.Database.Db.Model(&ticket).Update("status", next).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
	}

	utils.AddNotification(ticket.UserID, "Support ticket updated", "Your ticket \""+ticket.Subject+"\" has been reviewed.", "/dashboard/support")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket updated successfully!", ticket)
}
