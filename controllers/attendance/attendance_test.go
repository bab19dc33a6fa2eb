package attendanceController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shikkha/config"
	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	attendanceValidator "shikkha/validators/attendance"

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

	teacher := &models.User{
		Name: "Ms. Akter", Email: "akter@example.com", Password: "x",
		Role: models.RoleTeacher, ReferralCode: "AKTR-XYZ001",
	}
	require.NoError(t, db.Create(teacher).Error)

	token, err := middleware.GenerateJWT(teacher.ID, teacher.Name, string(teacher.Role), teacher.Email)
	require.NoError(t, err)

	app := fiber.New()
	marker := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)
	app.Post("/attendance/mark", middleware.JWTMiddleware, marker, attendanceValidator.Mark(), MarkAttendance)
	app.Get("/attendance", middleware.JWTMiddleware, marker, GetAttendance)
	return app, token
}

func mark(t *testing.T, app *fiber.App, token string, body map[string]interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/attendance/mark", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	io.Copy(io.Discard, resp.Body)
	return resp
}

func TestMarkAttendance_CreatesRecords(t *testing.T) {
	app, token := setupTest(t)

	resp := mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"entries": []map[string]interface{}{
			{"student_id": 10, "status": "PRESENT"},
			{"student_id": 11, "status": "ABSENT", "call_status": "CALLED"},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.AttendanceRecord{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestMarkAttendance_RemarkSameDayIsUpsert(t *testing.T) {
	app, token := setupTest(t)

	// Present in the morning, corrected to Absent later the same day.
	resp := mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"entries": []map[string]interface{}{{"student_id": 10, "status": "PRESENT"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"entries": []map[string]interface{}{{"student_id": 10, "status": "ABSENT"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.AttendanceRecord
	require.NoError(t, database.Database.Db.Where("student_id = ?", 10).Find(&records).Error)
	require.Len(t, records, 1, "re-marking must not create a second row for the day")
	assert.Equal(t, models.AttendanceAbsent, records[0].Status, "last write wins")
}

func TestGetAttendance_DateFilterMatchesStoredDay(t *testing.T) {
	app, token := setupTest(t)

	// A timestamp submitted with a +06:00 offset lands on the previous
	// UTC day; the date filter must see the same day the row stored.
	resp := mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"date": "2026-03-10T01:30:00+06:00",
		"entries": []map[string]interface{}{{"student_id": 10, "status": "PRESENT"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fetch := func(date string) []models.AttendanceRecord {
		req := httptest.NewRequest(http.MethodGet, "/attendance?date="+date, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var env struct {
			Data []models.AttendanceRecord `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		return env.Data
	}

	assert.Len(t, fetch("2026-03-09"), 1)
	assert.Empty(t, fetch("2026-03-10"))
}

func TestMarkAttendance_RejectsUnknownStatus(t *testing.T) {
	app, token := setupTest(t)

	resp := mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"entries": []map[string]interface{}{{"student_id": 10, "status": "HOLIDAY"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMarkAttendance_StudentRoleForbidden(t *testing.T) {
	app, _ := setupTest(t)

	student := &models.User{
		Name: "Karim", Email: "karim@example.com", Password: "x",
		Role: models.RoleStudent, ReferralCode: "KRM-XYZ002",
	}
	require.NoError(t, database.Database.Db.Create(student).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, string(student.Role), student.Email)
	require.NoError(t, err)

	resp := mark(t, app, token, map[string]interface{}{
		"batch_id": 1, "course_id": 2,
		"entries": []map[string]interface{}{{"student_id": 10, "status": "PRESENT"}},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
