package models

import "gorm.io/gorm"

// DoubtStatus is the resolution state of a student doubt.
type DoubtStatus string

const (
	DoubtOpen     DoubtStatus = "OPEN"
	DoubtAssigned DoubtStatus = "ASSIGNED"
	DoubtResolved DoubtStatus = "RESOLVED"
)

// CanTransitionTo reports whether moving to next is a legal status change.
// A doubt is claimed by a solver before it can be resolved.
func (s DoubtStatus) CanTransitionTo(next DoubtStatus) bool {
	switch s {
	case DoubtOpen:
		return next == DoubtAssigned
	case DoubtAssigned:
		return next == DoubtResolved || next == DoubtOpen
	default:
		return false
	}
}

// Doubt is a question raised by an enrolled student, answered by a
// doubt-solver.
type Doubt struct {
	gorm.Model
	StudentID uint        `json:"student_id" gorm:"index;not null"`
	CourseID  uint        `json:"course_id" gorm:"index;not null"`
	Question  string      `json:"question" gorm:"not null"`
	Answer    string      `json:"answer"`
	SolverID  uint        `json:"solver_id" gorm:"default:0"`
	Status    DoubtStatus `json:"status" gorm:"type:varchar(20);default:'OPEN'"`
	IsDeleted bool        `gorm:"default:false"`
}
