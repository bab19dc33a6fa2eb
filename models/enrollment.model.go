package models

import (
	"time"

	"gorm.io/gorm"
)

// EnrollmentStatus tracks learning progress, not payment.
type EnrollmentStatus string

const (
	EnrollmentInProgress EnrollmentStatus = "IN_PROGRESS"
	EnrollmentCompleted  EnrollmentStatus = "COMPLETED"
)

// Enrollment records a user's paid access to a course cycle. Identity
// fields (user, course, cycle) are immutable after creation; progress
// and status are mutable.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course_cycle"`
	CourseID uint `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course_cycle"`
	CycleID  uint `json:"cycle_id" gorm:"default:0;uniqueIndex:idx_user_course_cycle"`

	// IdempotencyKey makes checkout replays return the original record
	// instead of creating a duplicate enrollment.
	IdempotencyKey string `json:"idempotency_key" gorm:"uniqueIndex;not null"`

	EnrollmentDate time.Time `json:"enrollment_date" gorm:"not null"`
	PricePaid      float64   `json:"price_paid" gorm:"not null"`
	PromoCodeID    uint      `json:"promo_code_id" gorm:"default:0"`

	Progress        float64          `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	Status          EnrollmentStatus `json:"status" gorm:"type:varchar(20);default:'IN_PROGRESS'"`
	IsGroupAccessed bool             `json:"is_group_accessed" gorm:"default:false"`
	IsDeleted       bool             `gorm:"default:false"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
