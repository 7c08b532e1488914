package companyAdminController

import (
	"errors"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/services"

	"github.com/gofiber/fiber/v2"
)

// GetTrainingModules returns the module catalog summary for assignment
func GetTrainingModules(c *fiber.Ctx) error {
	if _, err := companyScope(c); err != nil {
		return err
	}

	var modules []models.TrainingModule
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type moduleSummary struct {
		ID              uint   `json:"id"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		DurationMinutes int    `json:"duration_minutes"`
		DifficultyLevel string `json:"difficulty_level"`
		Category        string `json:"category"`
	}

	summaries := make([]moduleSummary, len(modules))
	for i, m := range modules {
		summaries[i] = moduleSummary{
			ID:              m.ID,
			Title:           m.Title,
			Description:     m.Description,
			DurationMinutes: m.DurationMinutes,
			DifficultyLevel: m.DifficultyLevel,
			Category:        m.Category,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": summaries,
	})
}

// AssignTraining pre-creates progress records for the given employees and
// modules. Existing assignments are left untouched.
func AssignTraining(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		EmployeeIDs []uint `json:"employee_ids"`
		ModuleIDs   []uint `json:"module_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Verify employees belong to this company
	var employeeCount int64
	db.Model(&models.Employee{}).
		Where("id IN ? AND company_id = ? AND is_deleted = ?", reqData.EmployeeIDs, companyID, false).
		Count(&employeeCount)
	if int(employeeCount) != len(reqData.EmployeeIDs) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Some employees not found or not in this company!", nil)
	}

	// Verify modules exist
	var moduleCount int64
	db.Model(&models.TrainingModule{}).
		Where("id IN ? AND is_deleted = ?", reqData.ModuleIDs, false).
		Count(&moduleCount)
	if int(moduleCount) != len(reqData.ModuleIDs) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Some training modules not found!", nil)
	}

	created, err := services.NewProgressLedger(db).Assign(reqData.EmployeeIDs, reqData.ModuleIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training assigned successfully!", fiber.Map{
		"assignments_created": created,
	})
}

// GetProgressReport returns the company-wide training progress report
func GetProgressReport(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	report := services.NewReports(database.Database.Db).CompanyProgressReport(companyID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report generated successfully!", report)
}

// ResetProgress puts an employee's module back to NOT_STARTED while keeping
// the cumulative attempts counter
func ResetProgress(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	employeeID := c.Locals("employeeID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND company_id = ? AND is_deleted = ?", employeeID, companyID, false).
		First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	record, err := services.NewProgressLedger(db).Reset(uint(employeeID), uint(moduleID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress record not found!", nil)
		}
		if errors.Is(err, services.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Record is being updated, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset successfully!", fiber.Map{
		"progress": record,
	})
}
