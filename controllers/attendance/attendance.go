package attendanceController

import (
	"time"

	"shikkha/database"
	"shikkha/middleware"
	"shikkha/models"
	"shikkha/utils"
	attendanceValidator "shikkha/validators/attendance"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// MarkAttendance upserts a day's roster in one ON CONFLICT batch write
// keyed on (student, date). Re-marking the same student overwrites the
// earlier status; concurrent markers cannot produce duplicate rows.
func MarkAttendance(c *fiber.Ctx) error {
	teacher := c.Locals("currentUser").(*models.User)

	reqData, ok := c.Locals("validatedAttendance").(*attendanceValidator.MarkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	day := utils.DayOf(time.Now())
	if reqData.Date != nil {
		day = utils.DayOf(*reqData.Date)
	}

	records := make([]models.AttendanceRecord, 0, len(reqData.Entries))
	for _, entry := range reqData.Entries {
		records = append(records, models.AttendanceRecord{
			StudentID:  entry.StudentID,
			Date:       day,
			BatchID:    reqData.BatchID,
			CourseID:   reqData.CourseID,
			Status:     models.AttendanceStatus(entry.Status),
			CallStatus: entry.CallStatus,
			RecordedBy: teacher.ID,
		})
	}

	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "call_status", "recorded_by", "updated_at"}),
	}).Create(&records).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance recorded successfully!", fiber.Map{
		"date":    day.Format("2006-01-02"),
		"records": len(records),
	})
}

// GetAttendance lists attendance records filtered by batch, course,
// student or date.
func GetAttendance(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.AttendanceRecord{}).Where("is_deleted = ?", false)

	if batchID := c.QueryInt("batch_id", 0); batchID > 0 {
		db = db.Where("batch_id = ?", batchID)
	}
	if courseID := c.QueryInt("course_id", 0); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}
	if studentID := c.QueryInt("student_id", 0); studentID > 0 {
		db = db.Where("student_id = ?", studentID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date must be YYYY-MM-DD!", nil)
		}
		db = db.Where("date = ?", utils.DayOf(date))
	}

	var records []models.AttendanceRecord
	if err := db.Order("date desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully!", records)
}

// GetStudentSummary returns present/absent/late counts and an
// attendance percentage for one student in one course.
func GetStudentSummary(c *fiber.Ctx) error {
	studentID := c.QueryInt("student_id", 0)
	courseID := c.QueryInt("course_id", 0)
	if studentID <= 0 || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "student_id and course_id are required!", nil)
	}

	var records []models.AttendanceRecord
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		studentID, courseID, false).Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	summary := fiber.Map{}
	var present, absent, late int
	for _, record := range records {
		switch record.Status {
		case models.AttendancePresent:
			present++
		case models.AttendanceAbsent:
			absent++
		case models.AttendanceLate:
			late++
		}
	}

	total := len(records)
	percent := 0.0
	if total > 0 {
		percent = float64(present+late) / float64(total) * 100
	}

	summary["present"] = present
	summary["absent"] = absent
	summary["late"] = late
	summary["total"] = total
	summary["percent"] = percent

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance summary fetched!", summary)
}
