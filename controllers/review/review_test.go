package reviewController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"shikkha/config"
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	reviewValidator "shikkha/validators/review"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", RevalidateEnabled: false}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	moderator := &models.User{
		Name: "Mod", Email: "mod@example.com", Password: "x",
		Role: models.RoleModerator, ReferralCode: "MOD-0001",
	}
	require.NoError(t, db.Create(moderator).Error)

	token, err := middleware.GenerateJWT(moderator.ID, moderator.Name, string(moderator.Role), moderator.Email)
	require.NoError(t, err)

	app := fiber.New()
	guard := middleware.RequireRole(models.RoleModerator, models.RoleAdmin)
	app.Put("/review/report/:id/resolve", middleware.JWTMiddleware, guard, reviewValidator.ReportID(), ResolveReport)
	return app, token
}

func seedReportedReview(t *testing.T, reporters int) (*models.Review, []models.ReviewReport) {
	t.Helper()
	db := database.Database.Db

	review := &models.Review{CourseID: 1, UserID: 2, Rating: 1, Comment: "spam", Status: models.ReviewReported}
	require.NoError(t, db.Create(review).Error)

	reports := make([]models.ReviewReport, 0, reporters)
	for i := 0; i < reporters; i++ {
		report := models.ReviewReport{
			ReviewID: review.ID, ReporterID: uint(100 + i),
			Reason: "spam", Status: models.ReportPending,
		}
		require.NoError(t, db.Create(&report).Error)
		reports = append(reports, report)
	}
	return review, reports
}

func resolve(t *testing.T, app *fiber.App, token string, reportID uint, removeReview bool) *http.Response {
	t.Helper()

	payload, err := json.Marshal(map[string]bool{"remove_review": removeReview})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/review/report/"+itoa(reportID)+"/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	io.Copy(io.Discard, resp.Body)
	return resp
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestResolveReport_RemovalSettlesAllSiblingReports(t *testing.T) {
	app, token := setupTest(t)
	review, reports := seedReportedReview(t, 3)

	resp := resolve(t, app, token, reports[0].ID, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	db := database.Database.Db

	var fresh models.Review
	require.NoError(t, db.First(&fresh, review.ID).Error)
	assert.Equal(t, models.ReviewRemoved, fresh.Status)

	// Every report against the review was resolved in the same batch.
	var pending int64
	db.Model(&models.ReviewReport{}).
		Where("review_id = ? AND status = ?", review.ID, models.ReportPending).Count(&pending)
	assert.Equal(t, int64(0), pending)
}

func TestResolveReport_DismissRestoresReview(t *testing.T) {
	app, token := setupTest(t)
	review, reports := seedReportedReview(t, 1)

	resp := resolve(t, app, token, reports[0].ID, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	db := database.Database.Db

	var fresh models.Review
	require.NoError(t, db.First(&fresh, review.ID).Error)
	assert.Equal(t, models.ReviewVisible, fresh.Status)

	var report models.ReviewReport
	require.NoError(t, db.First(&report, reports[0].ID).Error)
	assert.Equal(t, models.ReportResolved, report.Status)
}

func TestResolveReport_AlreadyResolvedConflicts(t *testing.T) {
	app, token := setupTest(t)
	_, reports := seedReportedReview(t, 1)

	resp := resolve(t, app, token, reports[0].ID, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = resolve(t, app, token, reports[0].ID, false)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
