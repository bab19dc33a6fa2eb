package courseController

import (
	"time"

	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/pricing"

	"github.com/gofiber/fiber/v2"
)

// GetPublishedCourses lists published courses with pagination and an
// optional category filter.
func GetPublishedCourses(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ?", models.CoursePublished, false)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one published course with its effective
// price resolved for the current instant.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?",
		courseID, models.CoursePublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	response := fiber.Map{"course": course}

	if effectivePrice, err := pricing.ResolveBasePrice(&course, time.Now()); err == nil {
		response["effective_price"] = effectivePrice
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", response)
}
