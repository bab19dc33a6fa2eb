package models

import "gorm.io/gorm"

// TicketStatus is the moderation state of a support ticket.
type TicketStatus string

const (
	TicketPending  TicketStatus = "PENDING"
	TicketApproved TicketStatus = "APPROVED"
	TicketRejected TicketStatus = "REJECTED"
)

// CanTransitionTo reports whether moving to next is a legal status change.
// Rejected tickets may be resubmitted back to PENDING.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	switch s {
	case TicketPending:
		return next == TicketApproved || next == TicketRejected
	case TicketRejected:
		return next == TicketPending
	default:
		return false
	}
}

// SupportTicket model
type SupportTicket struct {
	gorm.Model
	UserID    uint         `json:"user_id" gorm:"index;not null"`
	Subject   string       `json:"subject" gorm:"not null"`
	Message   string       `json:"message" gorm:"not null"`
	Status    TicketStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	IsDeleted bool         `gorm:"default:false"`
}
