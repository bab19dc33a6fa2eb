package models

import (
	"time"

	"gorm.io/gorm"
)

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one student's attendance for one calendar day.
// The unique (student, date) index backs the ON CONFLICT upsert, so
// concurrent markers cannot create duplicate rows for the same day.
type AttendanceRecord struct {
	gorm.Model
	StudentID  uint             `json:"student_id" gorm:"not null;uniqueIndex:idx_student_date"`
	Date       time.Time        `json:"date" gorm:"not null;uniqueIndex:idx_student_date"`
	BatchID    uint             `json:"batch_id" gorm:"index;not null"`
	CourseID   uint             `json:"course_id" gorm:"index;not null"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(10);not null"`
	CallStatus string           `json:"call_status" gorm:"default:''"`
	RecordedBy uint             `json:"recorded_by" gorm:"not null"`
	IsDeleted  bool             `gorm:"default:false"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
