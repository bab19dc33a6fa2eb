package models

import "gorm.io/gorm"

// ReviewStatus is the visibility state of a course review.
type ReviewStatus string

const (
	ReviewVisible  ReviewStatus = "VISIBLE"
	ReviewReported ReviewStatus = "REPORTED"
	ReviewRemoved  ReviewStatus = "REMOVED"
)

// ReportStatus is the moderation state of a review report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportResolved ReportStatus = "RESOLVED"
)

// Review is a student's rating of a course they are enrolled in.
type Review struct {
	gorm.Model
	CourseID  uint         `json:"course_id" gorm:"index;not null"`
	UserID    uint         `json:"user_id" gorm:"index;not null"`
	Rating    int          `json:"rating" gorm:"not null"` // 1-5
	Comment   string       `json:"comment"`
	Status    ReviewStatus `json:"status" gorm:"type:varchar(20);default:'VISIBLE'"`
	IsDeleted bool         `gorm:"default:false"`
}

// ReviewReport flags a review for moderator attention.
type ReviewReport struct {
	gorm.Model
	ReviewID   uint         `json:"review_id" gorm:"index;not null"`
	ReporterID uint         `json:"reporter_id" gorm:"index;not null"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	ResolvedBy uint         `json:"resolved_by" gorm:"default:0"`
	IsDeleted  bool         `gorm:"default:false"`
}
