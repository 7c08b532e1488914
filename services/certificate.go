package services

import (
	"errors"
	"fmt"
	"sat/models"
	"time"

	"gorm.io/gorm"
)

// Certificate is a projection of a completed progress record. It is never
// persisted: reissuing from the same record always yields identical output.
type Certificate struct {
	CertificateID string    `json:"certificate_id"`
	EmployeeID    uint      `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	ModuleID      uint      `json:"module_id"`
	ModuleTitle   string    `json:"module_title"`
	Score         int       `json:"score"`
	CompletedAt   time.Time `json:"completed_at"`
}

// Certificates derives certificates from completed progress records
type Certificates struct {
	db *gorm.DB
}

// NewCertificates creates a certificate issuer over the given database handle
func NewCertificates(db *gorm.DB) *Certificates {
	return &Certificates{db: db}
}

// Issue builds the certificate for a completed (employee, module) pair.
// Returns ErrNotCompleted when the record has not reached COMPLETED.
func (s *Certificates) Issue(employeeID, moduleID uint) (*Certificate, error) {
	var record models.EmployeeProgress
	err := s.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !record.IsCompleted() || record.CompletedAt == nil {
		return nil, ErrNotCompleted
	}

	var employee models.Employee
	if err := s.db.Where("id = ? AND is_deleted = ?", employeeID, false).First(&employee).Error; err != nil {
		return nil, ErrNotFound
	}

	var module models.TrainingModule
	if err := s.db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return nil, ErrNotFound
	}

	score := 0
	if record.Score != nil {
		score = *record.Score
	}

	return &Certificate{
		CertificateID: fmt.Sprintf("CERT-%d-%d-%s", employeeID, moduleID, record.CompletedAt.Format("20060102")),
		EmployeeID:    employeeID,
		EmployeeName:  employee.Name,
		ModuleID:      moduleID,
		ModuleTitle:   module.Title,
		Score:         score,
		CompletedAt:   *record.CompletedAt,
	}, nil
}

// List returns certificates for every module the employee has completed
func (s *Certificates) List(employeeID uint) ([]Certificate, error) {
	var records []models.EmployeeProgress
	err := s.db.Where("employee_id = ? AND status = ?", employeeID, models.StatusCompleted).
		Order("completed_at desc").Find(&records).Error
	if err != nil {
		return nil, err
	}

	certificates := make([]Certificate, 0, len(records))
	for _, record := range records {
		cert, err := s.Issue(employeeID, record.ModuleID)
		if err != nil {
			continue
		}
		certificates = append(certificates, *cert)
	}
	return certificates, nil
}
