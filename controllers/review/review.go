package reviewController

import (
	"fmt"

	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	reviewValidator "shikkha/validators/review"

	"github.com/gofiber/fiber/v2"
)

// CreateReview lets an enrolled student rate a course once.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only review courses you are enrolled in!", nil)
	}

	var existing models.Review
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, reqData.CourseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := models.Review{
		CourseID: reqData.CourseID,
		UserID:   userID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
		Status:   models.ReviewVisible,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	utils.RevalidatePath(fmt.Sprintf("/courses/%d", reqData.CourseID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review posted successfully!", review)
}

// GetCourseReviews lists visible reviews for a course.
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var reviews []models.Review
	if err := database.Database.Db.Where("course_id = ? AND status <> ? AND is_deleted = ?",
		courseID, models.ReviewRemoved, false).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// ReportReview files a moderation report against a review and flags it.
func ReportReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReport").(*reviewValidator.ReportReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ReviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	report := models.ReviewReport{
		ReviewID:   review.ID,
		ReporterID: userID,
		Reason:     reqData.Reason,
		Status:     models.ReportPending,
	}

	tx := db.Begin()
	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to report review!", nil)
	}
	if err := tx.Model(&review).Update("status", models.ReviewReported).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to report review!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review reported successfully!", report)
}

// ResolveReport settles a report. Removal is atomic: the review is
// removed and every report against it resolved in one transaction.
func ResolveReport(c *fiber.Ctx) error {
	moderator := c.Locals("currentUser").(*models.User)
	reportID := c.Locals("reportID").(int)

	var reqData struct {
		RemoveReview bool `json:"remove_review"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var report models.ReviewReport
	if err := db.Where("id = ? AND is_deleted = ?", reportID, false).First(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	if report.Status != models.ReportPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Report is already resolved!", nil)
	}

	tx := db.Begin()

	if reqData.RemoveReview {
		if err := tx.Model(&models.Review{}).Where("id = ?", report.ReviewID).
			Update("status", models.ReviewRemoved).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve report!", nil)
		}
		// All sibling reports are settled along with this one.
		if err := tx.Model(&models.ReviewReport{}).
			Where("review_id = ? AND status = ?", report.ReviewID, models.ReportPending).
			Updates(map[string]interface{}{"status": models.ReportResolved, "resolved_by": moderator.ID}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve report!", nil)
		}
	} else {
		if err := tx.Model(&report).
			Updates(map[string]interface{}{"status": models.ReportResolved, "resolved_by": moderator.ID}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve report!", nil)
		}
		if err := tx.Model(&models.Review{}).
			Where("id = ? AND status = ?", report.ReviewID, models.ReviewReported).
			Update("status", models.ReviewVisible).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve report!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report resolved successfully!", nil)
}
