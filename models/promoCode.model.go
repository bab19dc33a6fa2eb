package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PromoType is percentage or fixed.
type PromoType string

const (
	PromoTypeFixed      PromoType = "fixed"
	PromoTypePercentage PromoType = "percentage"
)

// PromoCode is a discount token applied at enrollment checkout.
type PromoCode struct {
	gorm.Model
	Code  string    `json:"code" gorm:"uniqueIndex;not null"`
	Type  PromoType `json:"type" gorm:"type:varchar(20);not null"`
	Value float64   `json:"value" gorm:"not null"`

	UsageCount int `json:"usage_count" gorm:"default:0"`
	UsageLimit int `json:"usage_limit" gorm:"not null"`

	ExpiresAt *time.Time `json:"expires_at"`

	// ApplicableCourseIds is a comma-separated list of course ids, or
	// "all" for a platform-wide code.
	ApplicableCourseIds string `json:"applicable_course_ids" gorm:"default:'all'"`

	// RestrictedToUserID limits redemption to a single user when non-zero.
	RestrictedToUserID uint `json:"restricted_to_user_id" gorm:"default:0"`

	OrganizationID uint `json:"organization_id" gorm:"index;default:0"`
	// IsActive carries no column default so an inactive code survives
	// Create (a zero value with a default tag is dropped from the INSERT).
	IsActive  bool `json:"is_active"`
	IsDeleted bool `gorm:"default:false"`
}

// AppliesTo reports whether the code covers the given course.
func (p *PromoCode) AppliesTo(courseID uint) bool {
	for _, part := range strings.Split(p.ApplicableCourseIds, ",") {
		part = strings.TrimSpace(part)
		if part == "all" {
			return true
		}
		if id, err := strconv.ParseUint(part, 10, 64); err == nil && uint(id) == courseID {
			return true
		}
	}
	return false
}

// Expired reports whether the code's expiry date has passed.
func (p *PromoCode) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
