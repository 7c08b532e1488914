package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee belongs to exactly one company. Email is unique per company.
type Employee struct {
	gorm.Model
	CompanyID    uint       `json:"company_id" gorm:"index;not null;uniqueIndex:idx_company_email"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"not null;uniqueIndex:idx_company_email"`
	Password     string     `json:"-" gorm:"not null"` // hashed
	Department   string     `json:"department" gorm:"default:''"`
	EmployeeCode string     `json:"employee_code" gorm:"default:''"` // company-specific ID
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}
