package promoController

import (
	"strings"

	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	promoValidator "shikkha/validators/promo"

	"github.com/gofiber/fiber/v2"
)

// AdminCreatePromo creates a new promo code. A random code is generated
// when none is supplied.
func AdminCreatePromo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreatePromo").(*promoValidator.CreatePromoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	code := strings.ToUpper(strings.TrimSpace(reqData.Code))
	if code == "" {
		code = utils.GeneratePromoCode()
	}

	db := database.Database.Db

	if err := db.Where("code = ?", code).First(&models.PromoCode{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Promo code already exists!", nil)
	}

	applicable := strings.TrimSpace(reqData.ApplicableCourseIds)
	if applicable == "" {
		applicable = "all"
	}

	promo := models.PromoCode{
		Code:                code,
		Type:                models.PromoType(reqData.Type),
		Value:               reqData.Value,
		UsageLimit:          reqData.UsageLimit,
		ExpiresAt:           reqData.ExpiresAt,
		ApplicableCourseIds: applicable,
		RestrictedToUserID:  reqData.RestrictedToUserID,
		IsActive:            true,
	}

	if err := db.Create(&promo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create promo code!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Promo code created successfully!", promo)
}

// AdminListPromos lists promo codes newest first.
func AdminListPromos(c *fiber.Ctx) error {
	var promos []models.PromoCode
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&promos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch promo codes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promo codes fetched!", promos)
}

// AdminDeactivatePromo turns a promo code off without deleting its
// redemption history.
func AdminDeactivatePromo(c *fiber.Ctx) error {
	promoID := c.Locals("promoID").(int)

	var promo models.PromoCode
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", promoID, false).First(&promo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promo code not found!", nil)
	}

	if err := database.Database.Db.Model(&promo).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate promo code!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promo code deactivated!", promo)
}
