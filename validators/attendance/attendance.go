package attendanceValidator

import (
	"time"

	"shikkha/middleware"
	"shikkha/models"

	"github.com/gofiber/fiber/v2"
)

// MarkEntry is one student's status in a roster submission.
type MarkEntry struct {
	StudentID  uint   `json:"student_id"`
	Status     string `json:"status"`
	CallStatus string `json:"call_status"`
}

// MarkRequest is the bulk roster payload for one batch/course/day.
type MarkRequest struct {
	BatchID  uint        `json:"batch_id"`
	CourseID uint        `json:"course_id"`
	Date     *time.Time  `json:"date"`
	Entries  []MarkEntry `json:"entries"`
}

func Mark() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.BatchID == 0 {
			errors["batch_id"] = "Batch ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if len(reqData.Entries) == 0 {
			errors["entries"] = "At least one entry is required!"
		}
		for _, entry := range reqData.Entries {
			if entry.StudentID == 0 {
				errors["entries"] = "Every entry needs a student ID!"
				break
			}
			if !models.AttendanceStatus(entry.Status).Valid() {
				errors["entries"] = "Status must be PRESENT, ABSENT or LATE!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttendance", reqData)
		return c.Next()
	}
}
