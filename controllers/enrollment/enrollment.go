package enrollmentController

import (
	"fmt"
	"time"

	promoController "shikkha/controllers/promo"
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/pricing"
	"shikkha/utils"
	enrollmentValidator "shikkha/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checkout enrolls the caller in a course. The whole write path runs in
// one transaction: promo redemption is a conditional UPDATE, and a
// replayed Idempotency-Key returns the original enrollment instead of
// creating a duplicate.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*enrollmentValidator.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	idempotencyKey := c.Get("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	// Replay of an already-processed checkout returns the original record.
	// Keys are scoped to the caller so one user cannot read another's
	// enrollment by reusing their key.
	var existing models.Enrollment
	if err := db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; err == nil {
		if existing.UserID != userID {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Idempotency key already used!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment already processed!", existing)
	}

	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?",
		reqData.CourseID, models.CoursePublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	prebookingActive := course.PrebookingOpen(now)

	basePrice, err := pricing.ResolveBasePrice(&course, now)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Course has no valid price!", nil)
	}

	var promo *models.PromoCode
	discount := 0.0
	if reqData.PromoCode != "" {
		var msg string
		promo, discount, msg = promoController.ValidatePromo(db, reqData.PromoCode, course.ID, userID, basePrice)
		if msg != "" {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, msg, nil)
		}
	}

	var duplicate models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND cycle_id = ? AND is_deleted = ?",
		userID, course.ID, reqData.CycleID, false).First(&duplicate).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:         userID,
		CourseID:       course.ID,
		CycleID:        reqData.CycleID,
		IdempotencyKey: idempotencyKey,
		EnrollmentDate: now,
		PricePaid:      pricing.FinalPrice(basePrice, discount),
		Status:         models.EnrollmentInProgress,
	}

	tx := db.Begin()

	if promo != nil {
		redeemed, err := promoController.RedeemPromo(tx, promo.ID)
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to redeem promo code!", nil)
		}
		if !redeemed {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, promoController.MsgUsageLimit, nil)
		}
		enrollment.PromoCodeID = promo.ID
	}

	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if prebookingActive {
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			Update("prebooking_count", gorm.Expr("prebooking_count + 1")).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	coursePath := fmt.Sprintf("/courses/%d", course.ID)
	utils.NotifyUser(&user, "Enrollment confirmed", "You are enrolled in \""+course.Title+"\".", coursePath)
	utils.RevalidatePath(coursePath)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments with pagination.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).Preload("Course")

	var total int64
	db.Count(&total)

	var enrollments []models.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// CompleteEnrollment marks the caller's enrollment as completed.
func CompleteEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Status == models.EnrollmentCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment is already completed!", nil)
	}

	updates := map[string]interface{}{
		"status":   models.EnrollmentCompleted,
		"progress": 100.0,
	}
	if err := database.Database.Db.Model(&enrollment).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", enrollment)
}
