package doubtController

import (
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	doubtValidator "shikkha/validators/doubt"

	"github.com/gofiber/fiber/v2"
)

// CreateDoubt opens a question on a course the student is enrolled in.
func CreateDoubt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDoubt").(*doubtValidator.CreateDoubtRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only ask doubts on courses you are enrolled in!", nil)
	}

	doubt := models.Doubt{
		StudentID: userID,
		CourseID:  reqData.CourseID,
		Question:  reqData.Question,
		Status:    models.DoubtOpen,
	}

	if err := db.Create(&doubt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create doubt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Doubt posted successfully!", doubt)
}

// GetMyDoubts lists the caller's doubts newest first.
func GetMyDoubts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var doubts []models.Doubt
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&doubts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch doubts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Doubts fetched successfully!", doubts)
}

// GetOpenDoubts lists unclaimed doubts for solvers.
func GetOpenDoubts(c *fiber.Ctx) error {
	var doubts []models.Doubt
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", models.DoubtOpen, false).
		Order("created_at asc").Find(&doubts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch doubts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Open doubts fetched!", doubts)
}

// ClaimDoubt assigns an OPEN doubt to the calling solver. The claim is
// a conditional UPDATE so two solvers cannot both take the same doubt.
func ClaimDoubt(c *fiber.Ctx) error {
	solver := c.Locals("currentUser").(*models.User)
	doubtID := c.Locals("doubtID").(int)

	result := database.Database.Db.Model(&models.Doubt{}).
		Where("id = ? AND status = ? AND is_deleted = ?", doubtID, models.DoubtOpen, false).
		Updates(map[string]interface{}{"status": models.DoubtAssigned, "solver_id": solver.ID})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to claim doubt!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Doubt is not open!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Doubt claimed successfully!", nil)
}

// AnswerDoubt resolves a doubt assigned to the calling solver.
func AnswerDoubt(c *fiber.Ctx) error {
	solver := c.Locals("currentUser").(*models.User)
	doubtID := c.Locals("doubtID").(int)

	reqData, ok := c.Locals("validatedAnswer").(*doubtValidator.AnswerDoubtRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var doubt models.Doubt
	if err := database.Database.Db.Where("id = ? AND solver_id = ? AND is_deleted = ?",
		doubtID, solver.ID, false).First(&doubt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Doubt not found!", nil)
	}

	if !doubt.Status.CanTransitionTo(models.DoubtResolved) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Doubt is not assigned to you!", nil)
	}

	updates := map[string]interface{}{
		"answer": reqData.Answer,
		"status": models.DoubtResolved,
	}
	if err := database.Database.Db.Model(&doubt).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to answer doubt!", nil)
	}

	utils.AddNotification(doubt.StudentID, "Doubt answered", "Your question has an answer now.", "/dashboard/doubts")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Doubt answered successfully!", doubt)
}
