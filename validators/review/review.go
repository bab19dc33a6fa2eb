package reviewValidator

import (
	"strconv"
	"strings"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateReviewRequest rates an enrolled course.
type CreateReviewRequest struct {
	CourseID uint   `json:"course_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ReportReviewRequest flags a review for moderation.
type ReportReviewRequest struct {
	ReviewID uint   `json:"review_id"`
	Reason   string `json:"reason"`
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func ReportReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReportReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.ReviewID == 0 {
			errors["review_id"] = "Review ID is required!"
		}
		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Reason is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}

// ReportID validates the :id route param.
func ReportID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reportID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || reportID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid report ID!", nil)
		}

		c.Locals("reportID", reportID)
		return c.Next()
	}
}
