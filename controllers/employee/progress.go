package employeeController

import (
	"errors"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/services"

	"github.com/gofiber/fiber/v2"
)

// GetProgress returns all progress records for the employee
func GetProgress(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	var progress []models.EmployeeProgress
	if err := database.Database.Db.Where("employee_id = ?", employee.ID).Find(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": progress,
	})
}

// GetModuleProgress returns the employee's progress record for one module
func GetModuleProgress(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	var record models.EmployeeProgress
	if err := database.Database.Db.Where("employee_id = ? AND module_id = ?", employee.ID, moduleID).
		First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress found for this module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": record,
	})
}

// UpdateProgress records a playback progress update for a module
func UpdateProgress(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Progress     *int `json:"progress"`
		LastPosition *int `json:"last_position"`
		TimeSpent    *int `json:"time_spent_minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	percent := 0
	if reqData.Progress != nil {
		percent = *reqData.Progress
	}
	position := 0
	if reqData.LastPosition != nil {
		position = *reqData.LastPosition
	}
	minutes := 0
	if reqData.TimeSpent != nil {
		minutes = *reqData.TimeSpent
	}

	ledger := services.NewProgressLedger(database.Database.Db)
	record, err := ledger.UpdatePlayback(employee.ID, uint(moduleID), percent, position, minutes)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		if errors.Is(err, services.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Progress is being updated, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress": record,
	})
}

// SaveNotes saves the employee's notes for a module
func SaveNotes(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	reqData := new(struct {
		Notes string `json:"notes"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var note models.EmployeeNote
	err = db.Where("employee_id = ? AND module_id = ?", employee.ID, moduleID).First(&note).Error
	if err != nil {
		note = models.EmployeeNote{
			EmployeeID: employee.ID,
			ModuleID:   uint(moduleID),
			Notes:      reqData.Notes,
		}
		if err := db.Create(&note).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save notes!", nil)
		}
	} else {
		note.Notes = reqData.Notes
		if err := db.Save(&note).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save notes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes saved successfully!", nil)
}

// GetNotes returns the employee's notes for a module
func GetNotes(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	var note models.EmployeeNote
	notes := ""
	if err := database.Database.Db.Where("employee_id = ? AND module_id = ?", employee.ID, moduleID).First(&note).Error; err == nil {
		notes = note.Notes
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", fiber.Map{
		"notes": notes,
	})
}
