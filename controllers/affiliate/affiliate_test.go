package affiliateController

import (
	"testing"
	"time"

	"shikkha/database"
	"shikkha/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedReferredEnrollment(t *testing.T, db *gorm.DB, affiliateID uint, email string, price float64) {
	t.Helper()

	user := &models.User{
		Name: "Referred", Email: email, Password: "x",
		Role: models.RoleStudent, ReferredBy: affiliateID,
		ReferralCode: uuid.NewString()[:12],
	}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, db.Create(&models.Enrollment{
		UserID: user.ID, CourseID: 1,
		IdempotencyKey: uuid.NewString(),
		EnrollmentDate: time.Now(), PricePaid: price,
		Status: models.EnrollmentInProgress,
	}).Error)
}

func TestComputeCommission_NetsCompletedPayouts(t *testing.T) {
	db := newTestDb(t)

	affiliate := &models.User{
		Name: "Affiliate", Email: "aff@example.com", Password: "x",
		Role: models.RoleAffiliate, ReferralCode: "AFF-0001",
	}
	require.NoError(t, db.Create(affiliate).Error)

	// Two referred enrollments of 1000 and 2000, one completed payout
	// of 150: balance = 3000*0.10 - 150 = 150.
	seedReferredEnrollment(t, db, affiliate.ID, "a@example.com", 1000)
	seedReferredEnrollment(t, db, affiliate.ID, "b@example.com", 2000)

	require.NoError(t, db.Create(&models.Payout{
		UserID: affiliate.ID, Amount: 150, PayoutDate: time.Now(),
		Status: models.PayoutCompleted, Method: "bkash",
	}).Error)

	summary, err := ComputeCommission(db, affiliate.ID, 0.10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.ReferredUsers)
	assert.Equal(t, int64(2), summary.Enrollments)
	assert.Equal(t, 3000.0, summary.TotalSales)
	assert.Equal(t, 300.0, summary.EarnedCommission)
	assert.Equal(t, 150.0, summary.CompletedPayouts)
	assert.Equal(t, 150.0, summary.AvailableBalance)
}

func TestComputeCommission_PendingPayoutsDoNotReduceBalance(t *testing.T) {
	db := newTestDb(t)

	affiliate := &models.User{
		Name: "Affiliate", Email: "aff2@example.com", Password: "x",
		Role: models.RoleAffiliate, ReferralCode: "AFF-0002",
	}
	require.NoError(t, db.Create(affiliate).Error)

	seedReferredEnrollment(t, db, affiliate.ID, "c@example.com", 1000)

	require.NoError(t, db.Create(&models.Payout{
		UserID: affiliate.ID, Amount: 40, PayoutDate: time.Now(),
		Status: models.PayoutPending, Method: "nagad",
	}).Error)

	summary, err := ComputeCommission(db, affiliate.ID, 0.10)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.EarnedCommission)
	assert.Equal(t, 40.0, summary.PendingPayouts)
	assert.Equal(t, 100.0, summary.AvailableBalance, "only completed payouts reduce the balance")
}

func TestComputeCommission_IgnoresUnreferredEnrollments(t *testing.T) {
	db := newTestDb(t)

	affiliate := &models.User{
		Name: "Affiliate", Email: "aff3@example.com", Password: "x",
		Role: models.RoleAffiliate, ReferralCode: "AFF-0003",
	}
	require.NoError(t, db.Create(affiliate).Error)

	// Organic signup, no referrer.
	organic := &models.User{
		Name: "Organic", Email: "organic@example.com", Password: "x",
		Role: models.RoleStudent, ReferralCode: "ORG-0001",
	}
	require.NoError(t, db.Create(organic).Error)
	require.NoError(t, db.Create(&models.Enrollment{
		UserID: organic.ID, CourseID: 1,
		IdempotencyKey: uuid.NewString(),
		EnrollmentDate: time.Now(), PricePaid: 5000,
		Status: models.EnrollmentInProgress,
	}).Error)

	summary, err := ComputeCommission(db, affiliate.ID, 0.10)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.ReferredUsers)
	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0.0, summary.AvailableBalance)
}

func TestComputeCommission_ConfigurableRate(t *testing.T) {
	db := newTestDb(t)

	affiliate := &models.User{
		Name: "Seller", Email: "seller@example.com", Password: "x",
		Role: models.RoleSeller, ReferralCode: "SEL-0001",
	}
	require.NoError(t, db.Create(affiliate).Error)

	seedReferredEnrollment(t, db, affiliate.ID, "d@example.com", 2000)

	summary, err := ComputeCommission(db, affiliate.ID, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 500.0, summary.EarnedCommission)
}
