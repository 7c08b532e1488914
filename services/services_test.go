package services

import (
	"encoding/json"
	"sat/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel tests stay isolated
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Employee{},
		&models.TrainingModule{},
		&models.EmployeeProgress{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, ContactEmail: name + "@example.com", IsActive: true}
	require.NoError(t, db.Create(company).Error)
	return company
}

func createEmployee(t *testing.T, db *gorm.DB, companyID uint, name, email string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		CompanyID: companyID,
		Name:      name,
		Email:     email,
		Password:  "hashed",
		IsActive:  true,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func createModule(t *testing.T, db *gorm.DB, title string, questions []models.Question, passingScore int) *models.TrainingModule {
	t.Helper()

	raw, err := json.Marshal(questions)
	require.NoError(t, err)

	module := &models.TrainingModule{
		Title:        title,
		PassingScore: passingScore,
		Questions:    datatypes.JSON(raw),
		IsActive:     true,
	}
	require.NoError(t, db.Create(module).Error)
	return module
}

func mcQuestion(id int, correct int, options ...string) models.Question {
	raw, _ := json.Marshal(correct)
	return models.Question{
		ID:            id,
		Question:      "pick one",
		Kind:          models.QuestionMultipleChoice,
		Options:       options,
		CorrectAnswer: raw,
	}
}

func tfQuestion(id int, correct bool) models.Question {
	raw, _ := json.Marshal(correct)
	return models.Question{
		ID:            id,
		Question:      "true or false",
		Kind:          models.QuestionTrueFalse,
		CorrectAnswer: raw,
	}
}

func standardQuestions() []models.Question {
	return []models.Question{
		mcQuestion(1, 0, "phishing", "spam", "adware"),
		mcQuestion(2, 2, "http", "ftp", "https"),
		tfQuestion(3, true),
		tfQuestion(4, false),
	}
}

func completeModule(t *testing.T, db *gorm.DB, employeeID, moduleID uint, completedAt time.Time, score int) *models.EmployeeProgress {
	t.Helper()
	record := &models.EmployeeProgress{
		EmployeeID:      employeeID,
		ModuleID:        moduleID,
		Status:          models.StatusCompleted,
		ProgressPercent: 100,
		Score:           &score,
		Attempts:        1,
		StartedAt:       &completedAt,
		CompletedAt:     &completedAt,
	}
	require.NoError(t, db.Create(record).Error)
	return record
}
