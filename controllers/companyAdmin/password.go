package companyAdminController

import (
	"log"
	"sat/config"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetEmployeePasswordInfo returns password metadata for one employee
func GetEmployeePasswordInfo(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	employeeID := c.Locals("employeeID").(int)

	var employee models.Employee
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", employeeID, companyID, false).
		First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password info fetched!", fiber.Map{
		"employee_id":           employee.ID,
		"employee_name":         employee.Name,
		"employee_email":        employee.Email,
		"has_password":          employee.Password != "",
		"password_last_updated": employee.UpdatedAt,
	})
}

// UpdateEmployeePassword sets a custom or generated password for an employee
func UpdateEmployeePassword(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	employeeID := c.Locals("employeeID").(int)

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND company_id = ? AND is_deleted = ?", employeeID, companyID, false).
		First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	reqData := new(struct {
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newPassword := reqData.Password
	if newPassword == "" {
		newPassword = utils.GeneratePassword(8)
	} else if len(newPassword) < 6 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password must be at least 6 characters long!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	employee.Password = string(hashedPassword)
	if err := db.Save(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee password updated successfully!", fiber.Map{
		"employee_id":   employee.ID,
		"employee_name": employee.Name,
		"new_password":  newPassword, // returned in plain text for the company admin
	})
}

// BulkResetPasswords generates new passwords for the given employees
func BulkResetPasswords(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	reqData := new(struct {
		EmployeeIDs []uint `json:"employee_ids"`
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.EmployeeIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Employee IDs are required!", nil)
	}

	db := database.Database.Db

	type resetResult struct {
		EmployeeID  uint   `json:"employee_id"`
		Name        string `json:"name"`
		NewPassword string `json:"new_password"`
	}

	results := []resetResult{}
	for _, employeeID := range reqData.EmployeeIDs {
		var employee models.Employee
		if err := db.Where("id = ? AND company_id = ? AND is_deleted = ?", employeeID, companyID, false).
			First(&employee).Error; err != nil {
			continue
		}

		newPassword := utils.GeneratePassword(8)
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
		if err != nil {
			continue
		}

		employee.Password = string(hashedPassword)
		if err := db.Save(&employee).Error; err != nil {
			continue
		}

		results = append(results, resetResult{
			EmployeeID:  employee.ID,
			Name:        employee.Name,
			NewPassword: newPassword,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Passwords reset successfully!", fiber.Map{
		"reset_count": len(results),
		"results":     results,
	})
}
