package promoController

import (
	"time"

	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/pricing"
	promoValidator "shikkha/validators/promo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Validation failure messages are shown verbatim in frontend toasts.
const (
	MsgInvalidCode  = "Invalid promo code."
	MsgRestricted   = "This promo code is not available for your account."
	MsgExpired      = "This promo code has expired."
	MsgUsageLimit   = "This promo code has reached its usage limit."
	MsgNotForCourse = "This promo code is not valid for this course."
)

// ValidatePromo runs the promo check chain for a course and caller,
// short-circuiting on the first failure. On success it returns the code
// and the discount against basePrice. It never mutates usage_count;
// redemption is a separate step at checkout.
func ValidatePromo(db *gorm.DB, code string, courseID, userID uint, basePrice float64) (*models.PromoCode, float64, string) {
	var promo models.PromoCode
	if err := db.Where("code = ? AND is_deleted = ?", code, false).First(&promo).Error; err != nil {
		return nil, 0, MsgInvalidCode
	}

	if promo.RestrictedToUserID != 0 && promo.RestrictedToUserID != userID {
		return nil, 0, MsgRestricted
	}

	if !promo.IsActive || promo.Expired(time.Now()) {
		return nil, 0, MsgExpired
	}

	if promo.UsageCount >= promo.UsageLimit {
		return nil, 0, MsgUsageLimit
	}

	if !promo.AppliesTo(courseID) {
		return nil, 0, MsgNotForCourse
	}

	return &promo, pricing.PromoDiscount(&promo, basePrice), ""
}

// RedeemPromo consumes one use of a promo code with a single
// conditional UPDATE, so two concurrent checkouts cannot both take the
// last remaining use. Returns false when the limit is already reached.
func RedeemPromo(tx *gorm.DB, promoID uint) (bool, error) {
	result := tx.Model(&models.PromoCode{}).
		Where("id = ? AND is_active = ? AND usage_count < usage_limit", promoID, true).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ApplyPromo previews a promo code against a course for the caller.
// Read-only: usage_count is not incremented here.
func ApplyPromo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedApplyPromo").(*promoValidator.ApplyPromoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?",
		reqData.CourseID, models.CoursePublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	basePrice, err := pricing.ResolveBasePrice(&course, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Course has no valid price!", nil)
	}

	promo, discount, msg := ValidatePromo(db, reqData.Code, course.ID, userID, basePrice)
	if msg != "" {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, msg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promo code applied!", fiber.Map{
		"code":        promo.Code,
		"type":        promo.Type,
		"base_price":  basePrice,
		"discount":    discount,
		"final_price": pricing.FinalPrice(basePrice, discount),
	})
}
