package utils

import (
	"log"
	"time"

	"shikkha/database"
	"shikkha/models"

	"github.com/robfig/cron/v3"
)

// InitializePromoScheduler sets up the daily sweep over promo codes and
// pre-booking windows.
func InitializePromoScheduler() {
	log.Println("[PROMO-SCHEDULER] Initializing promo scheduler...")

	c := cron.New()

	// Run daily at midnight
	c.AddFunc("0 0 * * *", func() {
		log.Println("[PROMO-SCHEDULER] Running daily sweep...")
		DeactivateExpiredPromos()
		ClosePrebookingWindows()
	})

	c.Start()
	log.Println("[PROMO-SCHEDULER] Promo scheduler started - runs daily at midnight")
}

// DeactivateExpiredPromos flips isActive off for codes whose expiry
// date has passed.
func DeactivateExpiredPromos() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.PromoCode{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("[PROMO-SCHEDULER] Error deactivating expired promos: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PROMO-SCHEDULER] Deactivated %d expired promo codes", result.RowsAffected)
	}
}

// ClosePrebookingWindows turns off pre-booking on courses whose window
// has ended, so the pricing resolver falls through to the normal
// discount chain.
func ClosePrebookingWindows() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Course{}).
		Where("is_prebooking = ? AND prebooking_end_date IS NOT NULL AND prebooking_end_date < ?", true, now).
		Update("is_prebooking", false)

	if result.Error != nil {
		log.Printf("[PROMO-SCHEDULER] Error closing pre-booking windows: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PROMO-SCHEDULER] Closed %d pre-booking windows", result.RowsAffected)
	}
}
