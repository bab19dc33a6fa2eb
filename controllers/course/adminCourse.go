package courseController

import (
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminListPendingCourses lists courses waiting for review.
func AdminListPendingCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?",
		models.CoursePending, false).Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched!", courses)
}

// AdminReviewCourse approves or rejects a PENDING course.
func AdminReviewCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var reqData struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	next := models.CourseRejected
	if reqData.Approve {
		next = models.CoursePublished
	}

	if !course.Status.CanTransitionTo(next) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is not waiting for review!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("status", next).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course status!", nil)
	}

	if reqData.Approve {
		utils.AddNotification(course.AuthorID, "Course published", "\""+course.Title+"\" is now live.", "/courses/"+c.Params("id"))
	} else {
		utils.AddNotification(course.AuthorID, "Course rejected", "\""+course.Title+"\" was rejected. You can edit and resubmit it.", "/dashboard/courses")
	}

	utils.RevalidatePath("/courses")
	utils.RevalidatePath("/courses/" + c.Params("id"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course review recorded!", course)
}

// AdminDeleteCourse soft-deletes a course.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	utils.RevalidatePath("/courses")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
