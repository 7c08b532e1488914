package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is a single-use token mailed to an employee
type PasswordResetToken struct {
	gorm.Model
	EmployeeID uint      `json:"employee_id" gorm:"index;not null"`
	Token      string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt  time.Time `json:"expires_at"`
	Used       bool      `json:"used" gorm:"default:false"`
}
