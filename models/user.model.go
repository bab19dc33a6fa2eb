package models

import (
	"time"

	"gorm.io/gorm"
)

// Role defines what a user can do on the platform
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleTeacher     Role = "TEACHER"
	RoleGuardian    Role = "GUARDIAN"
	RoleAdmin       Role = "ADMIN"
	RoleModerator   Role = "MODERATOR"
	RoleAffiliate   Role = "AFFILIATE"
	RoleSeller      Role = "SELLER"
	RoleDoubtSolver Role = "DOUBT_SOLVER"
)

// ValidRole returns true when the role is a supported value.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleGuardian, RoleAdmin,
		RoleModerator, RoleAffiliate, RoleSeller, RoleDoubtSolver:
		return true
	default:
		return false
	}
}

type User struct {
	gorm.Model
	ProfileImage   string `gorm:"default:''"`
	Name           string `gorm:"default:''"`
	Email          string `gorm:"unique;not null"`
	Mobile         string `gorm:"default:''"`
	Role           Role   `gorm:"type:varchar(20);default:'STUDENT'"`
	Password       string `gorm:"not null" json:"-"`
	OrganizationID uint   `gorm:"index;default:0"`

	// ReferralCode is this user's own shareable code; ReferredBy is the
	// id of the affiliate/seller whose code was used at signup.
	ReferralCode string `gorm:"uniqueIndex"`
	ReferredBy   uint   `gorm:"index;default:0"`

	IsEmailVerified bool       `gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsBlocked       bool       `gorm:"default:false"`
	IsDeleted       bool       `gorm:"default:false"`
}
