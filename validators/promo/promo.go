package promoValidator

import (
	"strconv"
	"strings"
	"time"

	"shikkha/middleware"
	"shikkha/models"

	"github.com/gofiber/fiber/v2"
)

// ApplyPromoRequest previews a code against a course.
type ApplyPromoRequest struct {
	CourseID uint   `json:"course_id"`
	Code     string `json:"code"`
}

// CreatePromoRequest is the admin creation payload.
type CreatePromoRequest struct {
	Code                string     `json:"code"`
	Type                string     `json:"type"`
	Value               float64    `json:"value"`
	UsageLimit          int        `json:"usage_limit"`
	ExpiresAt           *time.Time `json:"expires_at"`
	ApplicableCourseIds string     `json:"applicable_course_ids"`
	RestrictedToUserID  uint       `json:"restricted_to_user_id"`
}

func ApplyPromo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApplyPromoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Promo code is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Code = strings.ToUpper(strings.TrimSpace(reqData.Code))
		c.Locals("validatedApplyPromo", reqData)
		return c.Next()
	}
}

func CreatePromo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePromoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Type != string(models.PromoTypeFixed) && reqData.Type != string(models.PromoTypePercentage) {
			errors["type"] = "Type must be fixed or percentage!"
		}
		if reqData.Value <= 0 {
			errors["value"] = "Value must be greater than 0!"
		}
		if reqData.Type == string(models.PromoTypePercentage) && reqData.Value > 100 {
			errors["value"] = "Percentage value cannot exceed 100!"
		}
		if reqData.UsageLimit < 1 {
			errors["usage_limit"] = "Usage limit must be at least 1!"
		}
		if reqData.ExpiresAt != nil && reqData.ExpiresAt.Before(time.Now()) {
			errors["expires_at"] = "Expiry date must be in the future!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePromo", reqData)
		return c.Next()
	}
}

// PromoID validates the :id route param.
func PromoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		promoIDStr := strings.TrimSpace(c.Params("id"))
		promoID, err := strconv.Atoi(promoIDStr)
		if err != nil || promoID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid promo code ID!", nil)
		}

		c.Locals("promoID", promoID)
		return c.Next()
	}
}
