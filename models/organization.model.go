package models

import "gorm.io/gorm"

// OrganizationStatus is the moderation state of a partner organization.
type OrganizationStatus string

const (
	OrganizationPending  OrganizationStatus = "PENDING"
	OrganizationApproved OrganizationStatus = "APPROVED"
	OrganizationRejected OrganizationStatus = "REJECTED"
)

// CanTransitionTo reports whether moving to next is a legal status change.
// Rejected organizations may resubmit back to PENDING.
func (s OrganizationStatus) CanTransitionTo(next OrganizationStatus) bool {
	switch s {
	case OrganizationPending:
		return next == OrganizationApproved || next == OrganizationRejected
	case OrganizationRejected:
		return next == OrganizationPending
	default:
		return false
	}
}

// Organization is a partner institution publishing courses on the platform
type Organization struct {
	gorm.Model
	Name      string             `json:"name" gorm:"not null"`
	Slug      string             `json:"slug" gorm:"uniqueIndex"`
	OwnerID   uint               `json:"owner_id" gorm:"index"`
	Status    OrganizationStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	IsDeleted bool               `gorm:"default:false"`
}
