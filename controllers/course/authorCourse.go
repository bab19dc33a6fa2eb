package courseController

import (
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	courseValidator "shikkha/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new DRAFT course owned by the calling author.
func CreateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:             reqData.Title,
		Description:       reqData.Description,
		Category:          reqData.Category,
		OrganizationID:    user.OrganizationID,
		AuthorID:          user.ID,
		Status:            models.CourseDraft,
		Price:             reqData.Price,
		DiscountPrice:     reqData.DiscountPrice,
		IsPrebooking:      reqData.IsPrebooking,
		PrebookingPrice:   reqData.PrebookingPrice,
		PrebookingEndDate: reqData.PrebookingEndDate,
		PrebookingTarget:  reqData.PrebookingTarget,
		ThumbnailURL:      reqData.ThumbnailURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates an existing course owned by the caller. Editing
// is limited to DRAFT and REJECTED courses.
func UpdateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND author_id = ? AND is_deleted = ?",
		courseID, user.ID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.Status != models.CourseDraft && course.Status != models.CourseRejected {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only draft or rejected courses can be edited!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Price = reqData.Price
	course.DiscountPrice = reqData.DiscountPrice
	course.IsPrebooking = reqData.IsPrebooking
	course.PrebookingPrice = reqData.PrebookingPrice
	course.PrebookingEndDate = reqData.PrebookingEndDate
	course.PrebookingTarget = reqData.PrebookingTarget
	course.ThumbnailURL = reqData.ThumbnailURL

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// SubmitCourse moves a DRAFT or REJECTED course into PENDING review.
func SubmitCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND author_id = ? AND is_deleted = ?",
		courseID, user.ID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.Status.CanTransitionTo(models.CoursePending) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course cannot be submitted from its current status!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("status", models.CoursePending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit course!", nil)
	}

	utils.AddNotification(user.ID, "Course submitted", "\""+course.Title+"\" is now waiting for review.", "/dashboard/courses")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted for review!", course)
}
