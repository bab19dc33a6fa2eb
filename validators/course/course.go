package courseValidator

import (
	"strconv"
	"strings"
	"time"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CoursePayload is the author-facing create/update body. Price fields
// stay strings; the pricing package owns parsing.
type CoursePayload struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Price             string     `json:"price"`
	DiscountPrice     string     `json:"discount_price"`
	IsPrebooking      bool       `json:"is_prebooking"`
	PrebookingPrice   string     `json:"prebooking_price"`
	PrebookingEndDate *time.Time `json:"prebooking_end_date"`
	PrebookingTarget  int        `json:"prebooking_target"`
	ThumbnailURL      string     `json:"thumbnail_url"`
}

// CourseID validates the :id route param.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCourse validates the course creation body.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Price) == "" {
			errors["price"] = "Price is required!"
		}
		if reqData.IsPrebooking {
			if strings.TrimSpace(reqData.PrebookingPrice) == "" {
				errors["prebooking_price"] = "Pre-booking price is required when pre-booking is enabled!"
			}
			if reqData.PrebookingEndDate == nil {
				errors["prebooking_end_date"] = "Pre-booking end date is required when pre-booking is enabled!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseList validates listing query params.
func CourseList() fiber.Handler {
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
