package enrollmentController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shikkha/config"
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	enrollmentValidator "shikkha/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:            "test-secret",
		SaltRound:         4,
		CommissionRate:    0.10,
		RevalidateEnabled: false,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/enrollment/checkout", middleware.JWTMiddleware, enrollmentValidator.Checkout(), Checkout)
	return app
}

func seedStudent(t *testing.T) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Name: "Rahim", Email: "rahim@example.com", Password: "x",
		Role: models.RoleStudent, ReferralCode: "RAHIM-ABC123",
	}
	require.NoError(t, database.Database.Db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, string(user.Role), user.Email)
	require.NoError(t, err)
	return user, token
}

func seedPublishedCourse(t *testing.T, price string) *models.Course {
	t.Helper()

	course := &models.Course{
		Title: "Algebra Basics", AuthorID: 1,
		Status: models.CoursePublished, Price: price,
	}
	require.NoError(t, database.Database.Db.Create(course).Error)
	return course
}

func doCheckout(t *testing.T, app *fiber.App, token, idempotencyKey string, body map[string]interface{}) (*http.Response, envelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/enrollment/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestCheckout_PlainPrice(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	resp, env := doCheckout(t, app, token, "", map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Status)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 1000.0, enrollment.PricePaid)
	assert.Equal(t, models.EnrollmentInProgress, enrollment.Status)
}

func TestCheckout_WithPercentagePromo(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	require.NoError(t, database.Database.Db.Create(&models.PromoCode{
		Code: "SAVE10", Type: models.PromoTypePercentage, Value: 10,
		UsageLimit: 5, ApplicableCourseIds: "all", IsActive: true,
	}).Error)

	resp, env := doCheckout(t, app, token, "", map[string]interface{}{
		"course_id": course.ID, "promo_code": "SAVE10",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 900.0, enrollment.PricePaid)

	// Redemption consumed exactly one use.
	var promo models.PromoCode
	require.NoError(t, database.Database.Db.Where("code = ?", "SAVE10").First(&promo).Error)
	assert.Equal(t, 1, promo.UsageCount)
}

func TestCheckout_PrebookingPriceWins(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)

	tomorrow := time.Now().Add(24 * time.Hour)
	course := &models.Course{
		Title: "Physics Live", AuthorID: 1, Status: models.CoursePublished,
		Price: "৳1000", DiscountPrice: "৳800",
		IsPrebooking: true, PrebookingPrice: "৳500", PrebookingEndDate: &tomorrow,
	}
	require.NoError(t, database.Database.Db.Create(course).Error)

	resp, env := doCheckout(t, app, token, "", map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 500.0, enrollment.PricePaid)

	// The pre-booking seat counter advanced.
	var fresh models.Course
	require.NoError(t, database.Database.Db.First(&fresh, course.ID).Error)
	assert.Equal(t, 1, fresh.PrebookingCount)
}

func TestCheckout_IdempotencyReplay(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	key := "client-key-001"
	resp, first := doCheckout(t, app, token, key, map[string]interface{}{"course_id": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, replay := doCheckout(t, app, token, key, map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Enrollment already processed!", replay.Message)

	var original, replayed models.Enrollment
	require.NoError(t, json.Unmarshal(first.Data, &original))
	require.NoError(t, json.Unmarshal(replay.Data, &replayed))
	assert.Equal(t, original.ID, replayed.ID)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(1), count, "replay must not create a second enrollment")
}

func TestCheckout_IdempotencyKeyScopedToUser(t *testing.T) {
	app := setupTest(t)
	_, aliceToken := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	bob := &models.User{
		Name: "Karim", Email: "karim@example.com", Password: "x",
		Role: models.RoleStudent, ReferralCode: "KARIM-DEF456",
	}
	require.NoError(t, database.Database.Db.Create(bob).Error)
	bobToken, err := middleware.GenerateJWT(bob.ID, bob.Name, string(bob.Role), bob.Email)
	require.NoError(t, err)

	key := "shared-key-123"
	resp, _ := doCheckout(t, app, aliceToken, key, map[string]interface{}{"course_id": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Another user replaying the same key must not see the first
	// user's enrollment, nor be silently reported as enrolled.
	resp, env := doCheckout(t, app, bobToken, key, map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "Idempotency key already used!", env.Message)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ?", bob.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckout_DuplicateEnrollmentConflict(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	resp, _ := doCheckout(t, app, token, "key-a", map[string]interface{}{"course_id": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same course, different idempotency key: still one enrollment.
	resp, env := doCheckout(t, app, token, "key-b", map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestCheckout_PromoUsageLimitExhausted(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)
	course := seedPublishedCourse(t, "৳1000")

	require.NoError(t, database.Database.Db.Create(&models.PromoCode{
		Code: "ONCE", Type: models.PromoTypeFixed, Value: 100,
		UsageCount: 1, UsageLimit: 1, ApplicableCourseIds: "all", IsActive: true,
	}).Error)

	resp, env := doCheckout(t, app, token, "", map[string]interface{}{
		"course_id": course.ID, "promo_code": "ONCE",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "This promo code has reached its usage limit.", env.Message)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(0), count, "failed promo blocks the whole checkout")
}

func TestCheckout_UnpublishedCourseNotFound(t *testing.T) {
	app := setupTest(t)
	_, token := seedStudent(t)

	course := &models.Course{Title: "Secret", AuthorID: 1, Status: models.CourseDraft, Price: "৳100"}
	require.NoError(t, database.Database.Db.Create(course).Error)

	resp, env := doCheckout(t, app, token, "", map[string]interface{}{"course_id": course.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found!", env.Message)
}
