package models

import (
	"gorm.io/gorm"
)

// Company represents a client organisation whose employees take training
type Company struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null"`
	ContactEmail  string `json:"contact_email" gorm:"not null"`
	AdminPassword string `json:"-" gorm:"not null"` // hashed, company admin login
	Industry      string `json:"industry" gorm:"default:''"`
	EmployeeCount int    `json:"employee_count" gorm:"default:0"`
	WebhookURL    string `json:"webhook_url" gorm:"default:''"` // completion events are POSTed here when set
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
