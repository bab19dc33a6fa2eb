package affiliateController

import (
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminListPendingPayouts lists payout requests awaiting settlement.
func AdminListPendingPayouts(c *fiber.Ctx) error {
	var payouts []models.Payout
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?",
		models.PayoutPending, false).Order("created_at asc").Find(&payouts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payouts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending payouts fetched!", payouts)
}

// AdminSettlePayout completes or rejects a PENDING payout.
func AdminSettlePayout(c *fiber.Ctx) error {
	payoutID := c.Locals("payoutID").(int)

	var reqData struct {
		Complete bool `json:"complete"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var payout models.Payout
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", payoutID, false).First(&payout).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payout not found!", nil)
	}

	next := models.PayoutRejected
	if reqData.Complete {
		next = models.PayoutCompleted
	}

	if !payout.Status.CanTransitionTo(next) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payout is not pending!", nil)
	}

	if err := database.Database.Db.Model(&payout).Update("status", next).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payout!", nil)
	}

	if reqData.Complete {
		utils.AddNotification(payout.UserID, "Payout completed", "Your payout has been sent.", "/dashboard/payouts")
	} else {
		utils.AddNotification(payout.UserID, "Payout rejected", "Your payout request was rejected. Contact support for details.", "/dashboard/payouts")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payout updated successfully!", payout)
}
