package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress statuses
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// EmployeeProgress tracks one employee's state on one training module.
// Exactly one record exists per (employee, module) pair.
type EmployeeProgress struct {
	gorm.Model
	EmployeeID       uint       `json:"employee_id" gorm:"not null;uniqueIndex:idx_employee_module"`
	ModuleID         uint       `json:"module_id" gorm:"not null;uniqueIndex:idx_employee_module"`
	Status           string     `json:"status" gorm:"default:'NOT_STARTED'"`
	ProgressPercent  int        `json:"progress_percent" gorm:"default:0"` // playback position, 0-100
	Score            *int       `json:"score"`                             // latest quiz score, nil until first grading
	Attempts         int        `json:"attempts" gorm:"default:0"`         // cumulative, never reset
	TimeSpentMinutes int        `json:"time_spent_minutes" gorm:"default:0"`
	LastPosition     int        `json:"last_position" gorm:"default:0"` // resume offset into content
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	Version          int        `json:"-" gorm:"default:0"` // optimistic lock
}

// IsCompleted reports whether the record reached the terminal state
func (p *EmployeeProgress) IsCompleted() bool {
	return p.Status == StatusCompleted
}
