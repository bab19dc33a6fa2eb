package affiliateValidator

import (
	"strconv"
	"strings"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// PayoutRequest asks for part of the caller's available balance.
type PayoutRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func RequestPayout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PayoutRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		switch strings.ToLower(reqData.Method) {
		case "bkash", "nagad", "bank":
		default:
			errors["method"] = "Method must be bkash, nagad or bank!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Method = strings.ToLower(reqData.Method)
		c.Locals("validatedPayout", reqData)
		return c.Next()
	}
}

// PayoutID validates the :id route param.
func PayoutID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payoutID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || payoutID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payout ID!", nil)
		}

		c.Locals("payoutID", payoutID)
		return c.Next()
	}
}
