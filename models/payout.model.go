package models

import (
	"time"

	"gorm.io/gorm"
)

// PayoutStatus is the settlement state of a payout request.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "PENDING"
	PayoutCompleted PayoutStatus = "COMPLETED"
	PayoutRejected  PayoutStatus = "REJECTED"
)

// CanTransitionTo reports whether moving to next is a legal status change.
func (s PayoutStatus) CanTransitionTo(next PayoutStatus) bool {
	return s == PayoutPending && (next == PayoutCompleted || next == PayoutRejected)
}

// Payout is a ledger entry for money paid (or requested) to an
// affiliate/seller. Commission accrual nets COMPLETED payouts against
// earned commission.
type Payout struct {
	gorm.Model
	UserID     uint         `json:"user_id" gorm:"index;not null"`
	Amount     float64      `json:"amount" gorm:"not null"`
	PayoutDate time.Time    `json:"payout_date" gorm:"not null"`
	Status     PayoutStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	Method     string       `json:"method" gorm:"default:''"` // bkash, nagad, bank
	IsDeleted  bool         `gorm:"default:false"`
}
