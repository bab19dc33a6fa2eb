package doubtValidator

import (
	"strconv"
	"strings"

	"shikkha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateDoubtRequest opens a question on an enrolled course.
type CreateDoubtRequest struct {
	CourseID uint   `json:"course_id"`
	Question string `json:"question"`
}

// AnswerDoubtRequest resolves an assigned doubt.
type AnswerDoubtRequest struct {
	Answer string `json:"answer"`
}

func CreateDoubt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDoubtRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDoubt", reqData)
		return c.Next()
	}
}

func AnswerDoubt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnswerDoubtRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Answer) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"answer": "Answer is required!"})
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}

// DoubtID validates the :id route param.
func DoubtID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doubtID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || doubtID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid doubt ID!", nil)
		}

		c.Locals("doubtID", doubtID)
		return c.Next()
	}
}
