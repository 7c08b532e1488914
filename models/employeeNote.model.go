package models

import "gorm.io/gorm"

// EmployeeNote holds an employee's free-text notes for a training module
type EmployeeNote struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"index;not null;uniqueIndex:idx_note_employee_module"`
	ModuleID   uint   `json:"module_id" gorm:"not null;uniqueIndex:idx_note_employee_module"`
	Notes      string `json:"notes" gorm:"type:text"`
}
