package affiliateController

import (
	"time"

	"shikkha/config"
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/pricing"
	affiliateValidator "shikkha/validators/affiliate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommissionSummary is the affiliate earnings breakdown.
type CommissionSummary struct {
	ReferredUsers    int64   `json:"referred_users"`
	Enrollments      int64   `json:"enrollments"`
	TotalSales       float64 `json:"total_sales"`
	CommissionRate   float64 `json:"commission_rate"`
	EarnedCommission float64 `json:"earned_commission"`
	CompletedPayouts float64 `json:"completed_payouts"`
	PendingPayouts   float64 `json:"pending_payouts"`
	AvailableBalance float64 `json:"available_balance"`
}

// ComputeCommission aggregates an affiliate's earnings: the sum of
// referred enrollments' paid prices times the configured commission
// rate, netted against completed payouts. Pending payouts do not reduce
// the balance but are reported so payout requests can withhold them.
func ComputeCommission(db *gorm.DB, userID uint, rate float64) (*CommissionSummary, error) {
	summary := &CommissionSummary{CommissionRate: rate}

	if err := db.Model(&models.User{}).
		Where("referred_by = ? AND is_deleted = ?", userID, false).
		Count(&summary.ReferredUsers).Error; err != nil {
		return nil, err
	}

	row := db.Model(&models.Enrollment{}).
		Select("COUNT(*) AS enrollment_count, COALESCE(SUM(price_paid), 0) AS sales_total").
		Where("is_deleted = ? AND user_id IN (?)", false,
			db.Model(&models.User{}).Select("id").Where("referred_by = ? AND is_deleted = ?", userID, false))

	var agg struct {
		EnrollmentCount int64
		SalesTotal      float64
	}
	if err := row.Scan(&agg).Error; err != nil {
		return nil, err
	}
	summary.Enrollments = agg.EnrollmentCount
	summary.TotalSales = agg.SalesTotal
	summary.EarnedCommission = pricing.Round2(agg.SalesTotal * rate)

	var completed float64
	if err := db.Model(&models.Payout{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.PayoutCompleted, false).
		Scan(&completed).Error; err != nil {
		return nil, err
	}
	summary.CompletedPayouts = completed

	var pending float64
	if err := db.Model(&models.Payout{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.PayoutPending, false).
		Scan(&pending).Error; err != nil {
		return nil, err
	}
	summary.PendingPayouts = pending

	summary.AvailableBalance = pricing.Round2(summary.EarnedCommission - completed)
	return summary, nil
}

// GetSummary returns the caller's commission summary.
func GetSummary(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	summary, err := ComputeCommission(database.Database.Db, user.ID, config.AppConfig.CommissionRate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute commission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Commission summary fetched!", summary)
}

// RequestPayout creates a PENDING payout for part of the caller's
// available balance.
func RequestPayout(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	reqData, ok := c.Locals("validatedPayout").(*affiliateValidator.PayoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	summary, err := ComputeCommission(db, user.ID, config.AppConfig.CommissionRate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute commission!", nil)
	}

	// Withhold already-pending requests so the same balance cannot be
	// requested twice.
	if reqData.Amount > summary.AvailableBalance-summary.PendingPayouts {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Requested amount exceeds available balance!", fiber.Map{
			"available_balance": summary.AvailableBalance,
			"pending_payouts":   summary.PendingPayouts,
		})
	}

	payout := models.Payout{
		UserID:     user.ID,
		Amount:     reqData.Amount,
		PayoutDate: time.Now(),
		Status:     models.PayoutPending,
		Method:     reqData.Method,
	}

	if err := db.Create(&payout).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request payout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payout requested successfully!", payout)
}

// GetPayouts lists the caller's payout ledger newest first.
func GetPayouts(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(*models.User)

	var payouts []models.Payout
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&payouts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payouts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payouts fetched successfully!", payouts)
}
