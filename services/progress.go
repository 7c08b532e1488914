package services

import (
	"errors"
	"sat/models"
	"time"

	"gorm.io/gorm"
)

// maxConflictRetries bounds the optimistic-lock retry loop on concurrent
// writes to the same progress record
const maxConflictRetries = 3

// ProgressLedger owns all writes to EmployeeProgress records
type ProgressLedger struct {
	db *gorm.DB
}

// NewProgressLedger creates a ledger over the given database handle
func NewProgressLedger(db *gorm.DB) *ProgressLedger {
	return &ProgressLedger{db: db}
}

// GetOrCreate returns the progress record for the (employee, module) pair,
// creating it on first touch. Admin assignment pre-creates NOT_STARTED
// records; an employee's own first interaction creates IN_PROGRESS ones.
func (l *ProgressLedger) GetOrCreate(employeeID, moduleID uint, asAssignment bool) (*models.EmployeeProgress, error) {
	if err := l.checkPairExists(employeeID, moduleID); err != nil {
		return nil, err
	}

	var record models.EmployeeProgress
	err := l.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record = models.EmployeeProgress{
		EmployeeID: employeeID,
		ModuleID:   moduleID,
		Status:     models.StatusNotStarted,
	}
	if !asAssignment {
		now := time.Now().UTC()
		record.Status = models.StatusInProgress
		record.StartedAt = &now
	}

	if err := l.db.Create(&record).Error; err != nil {
		// A concurrent first touch may have created the record already
		if findErr := l.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&record).Error; findErr == nil {
			return &record, nil
		}
		return nil, err
	}
	return &record, nil
}

// UpdatePlayback records a playback progress update. NOT_STARTED records move
// to IN_PROGRESS; reaching 100 percent completes the module. A COMPLETED
// record is never regressed by playback updates.
func (l *ProgressLedger) UpdatePlayback(employeeID, moduleID uint, percent, position, minutes int) (*models.EmployeeProgress, error) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		record, err := l.GetOrCreate(employeeID, moduleID, false)
		if err != nil {
			return nil, err
		}

		if record.IsCompleted() {
			return record, nil
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"progress_percent":   percent,
			"last_position":      position,
			"time_spent_minutes": record.TimeSpentMinutes + minutes,
			"status":             models.StatusInProgress,
		}
		if record.StartedAt == nil {
			updates["started_at"] = &now
		}
		if percent >= 100 {
			updates["status"] = models.StatusCompleted
			updates["completed_at"] = &now
		}

		ok, err := l.applyVersioned(record, updates)
		if err != nil {
			return nil, err
		}
		if ok {
			return l.reload(record.ID)
		}
	}

	return nil, ErrConflict
}

// SubmitQuiz grades a submission and applies the resulting state transition
// atomically: attempts always increment, a pass completes the module and a
// fail records the latest score. Submissions against a COMPLETED record are
// rejected so a later attempt can never lower a passing score.
func (l *ProgressLedger) SubmitQuiz(employeeID, moduleID uint, answers map[string]interface{}) (*models.EmployeeProgress, *GradeResult, error) {
	var module models.TrainingModule
	if err := l.db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	questions, err := module.QuestionSet()
	if err != nil {
		return nil, nil, err
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		record, err := l.GetOrCreate(employeeID, moduleID, false)
		if err != nil {
			return nil, nil, err
		}

		if record.IsCompleted() {
			return record, nil, ErrAlreadyCompleted
		}

		result := GradeQuiz(questions, answers, module.PassingScore)

		now := time.Now().UTC()
		score := result.Score
		updates := map[string]interface{}{
			"attempts": record.Attempts + 1,
			"score":    &score,
		}
		if record.StartedAt == nil {
			updates["started_at"] = &now
		}
		if result.Passed {
			updates["status"] = models.StatusCompleted
			updates["progress_percent"] = 100
			updates["completed_at"] = &now
		} else {
			updates["status"] = models.StatusFailed
		}

		ok, err := l.applyVersioned(record, updates)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			updated, err := l.reload(record.ID)
			if err != nil {
				return nil, nil, err
			}
			return updated, &result, nil
		}
	}

	return nil, nil, ErrConflict
}

// Assign pre-creates NOT_STARTED records for every missing (employee, module)
// pair and reports how many were created. Existing pairs are left untouched,
// so repeating an assignment is a no-op.
func (l *ProgressLedger) Assign(employeeIDs, moduleIDs []uint) (int, error) {
	created := 0
	for _, employeeID := range employeeIDs {
		for _, moduleID := range moduleIDs {
			var existing models.EmployeeProgress
			err := l.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return created, err
			}

			record := models.EmployeeProgress{
				EmployeeID: employeeID,
				ModuleID:   moduleID,
				Status:     models.StatusNotStarted,
			}
			if err := l.db.Create(&record).Error; err != nil {
				// A concurrent assign may have created the pair already
				if findErr := l.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&existing).Error; findErr == nil {
					continue
				}
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// Reset returns a record to NOT_STARTED while keeping the cumulative attempts
// counter, so history stays consistent across administrative resets
func (l *ProgressLedger) Reset(employeeID, moduleID uint) (*models.EmployeeProgress, error) {
	var record models.EmployeeProgress
	if err := l.db.Where("employee_id = ? AND module_id = ?", employeeID, moduleID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		updates := map[string]interface{}{
			"status":           models.StatusNotStarted,
			"progress_percent": 0,
			"last_position":    0,
			"score":            nil,
			"started_at":       nil,
			"completed_at":     nil,
		}

		ok, err := l.applyVersioned(&record, updates)
		if err != nil {
			return nil, err
		}
		if ok {
			return l.reload(record.ID)
		}

		if err := l.db.Where("id = ?", record.ID).First(&record).Error; err != nil {
			return nil, err
		}
	}

	return nil, ErrConflict
}

// applyVersioned performs one optimistic-locked write. It reports false when
// another writer got there first, in which case the caller reloads and
// retries.
func (l *ProgressLedger) applyVersioned(record *models.EmployeeProgress, updates map[string]interface{}) (bool, error) {
	updates["version"] = record.Version + 1

	res := l.db.Model(&models.EmployeeProgress{}).
		Where("id = ? AND version = ?", record.ID, record.Version).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (l *ProgressLedger) reload(id uint) (*models.EmployeeProgress, error) {
	var record models.EmployeeProgress
	if err := l.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// checkPairExists verifies both sides of the pair before a record is created
func (l *ProgressLedger) checkPairExists(employeeID, moduleID uint) error {
	var employeeCount int64
	l.db.Model(&models.Employee{}).Where("id = ? AND is_deleted = ?", employeeID, false).Count(&employeeCount)
	if employeeCount == 0 {
		return ErrNotFound
	}

	var moduleCount int64
	l.db.Model(&models.TrainingModule{}).Where("id = ? AND is_deleted = ?", moduleID, false).Count(&moduleCount)
	if moduleCount == 0 {
		return ErrNotFound
	}

	return nil
}
