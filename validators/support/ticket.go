package supportValidator

import (
	"strconv"
	"strings"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateTicketRequest opens a support ticket.
type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTicketRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// TicketID validates the :id route param.
func TicketID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ticketID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || ticketID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
		}

		c.Locals("ticketID", ticketID)
		return c.Next()
	}
}
