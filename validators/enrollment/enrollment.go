package enrollmentValidator

import (
	"strings"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CheckoutRequest is the enrollment checkout payload. The promo code is
// optional; cycle 0 means the course's default cycle.
type CheckoutRequest struct {
	CourseID  uint   `json:"course_id"`
	CycleID   uint   `json:"cycle_id"`
	PromoCode string `json:"promo_code"`
}

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"course_id": "Course ID is required!"})
		}

		reqData.PromoCode = strings.ToUpper(strings.TrimSpace(reqData.PromoCode))
		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

func ListEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		errors := make(map[string]string)
		if page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if limit < 1 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
