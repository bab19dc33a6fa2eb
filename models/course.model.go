package models

import (
	"time"

	"gorm.io/gorm"
)

// CourseStatus is the moderation state of a course.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePending   CourseStatus = "PENDING"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseRejected  CourseStatus = "REJECTED"
)

// CanTransitionTo reports whether moving to next is a legal status change.
// Authors submit drafts for review, admins publish or reject, and a
// rejected course may be resubmitted.
func (s CourseStatus) CanTransitionTo(next CourseStatus) bool {
	switch s {
	case CourseDraft:
		return next == CoursePending
	case CoursePending:
		return next == CoursePublished || next == CourseRejected
	case CourseRejected:
		return next == CoursePending
	default:
		return false
	}
}

// Course represents a sellable course. Price fields are stored as the
// display strings entered by content authors (they may carry currency
// glyphs such as "৳1000"); the pricing package parses them.
type Course struct {
	gorm.Model
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Category       string       `json:"category" gorm:"index"`
	OrganizationID uint         `json:"organization_id" gorm:"index"`
	AuthorID       uint         `json:"author_id" gorm:"index;not null"`
	Status         CourseStatus `json:"status" gorm:"type:varchar(20);default:'DRAFT'"`

	Price         string `json:"price"`
	DiscountPrice string `json:"discount_price"`

	IsPrebooking      bool       `json:"is_prebooking" gorm:"default:false"`
	PrebookingPrice   string     `json:"prebooking_price"`
	PrebookingEndDate *time.Time `json:"prebooking_end_date"`
	PrebookingTarget  int        `json:"prebooking_target" gorm:"default:0"`
	PrebookingCount   int        `json:"prebooking_count" gorm:"default:0"`

	ThumbnailURL string `json:"thumbnail_url"`
	IsDeleted    bool   `gorm:"default:false"`
}

// PrebookingOpen reports whether the pre-booking window is accepting
// enrollments: the end date is in the future and, when a seat target is
// set, seats remain.
func (c *Course) PrebookingOpen(now time.Time) bool {
	if !c.IsPrebooking || c.PrebookingEndDate == nil || !c.PrebookingEndDate.After(now) {
		return false
	}
	return c.PrebookingTarget == 0 || c.PrebookingCount < c.PrebookingTarget
}
