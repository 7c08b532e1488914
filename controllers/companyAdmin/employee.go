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

// companyScope returns the company ID established by the scope middleware
func companyScope(c *fiber.Ctx) (uint, error) {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return 0, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return companyID, nil
}

// ListEmployees returns all employees of the company
func ListEmployees(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	var employees []models.Employee
	if err := database.Database.Db.Where("company_id = ? AND is_deleted = ?", companyID, false).
		Order("created_at desc").Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employees fetched successfully!", fiber.Map{
		"employees": employees,
		"total":     len(employees),
	})
}

// CreateEmployee creates one employee and emails the generated credentials
func CreateEmployee(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedEmployee").(*struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Department   string `json:"department"`
		EmployeeCode string `json:"employee_code"`
		Password     string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists within the company
	var existing models.Employee
	if err := db.Where("company_id = ? AND email = ? AND is_deleted = ?", companyID, reqData.Email, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered for this company!", nil)
	}

	password := reqData.Password
	if password == "" {
		password = utils.GeneratePassword(8)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	employee := models.Employee{
		CompanyID:    companyID,
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		Department:   reqData.Department,
		EmployeeCode: reqData.EmployeeCode,
	}

	if err := db.Create(&employee).Error; err != nil {
		log.Printf("Error saving employee to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create employee!", nil)
	}

	utils.SendWelcomeEmail(employee.Email, employee.Name, employee.ID, password)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Employee created successfully!", fiber.Map{
		"employee":         employee,
		"initial_password": password,
		"password_emailed": true,
	})
}

// UpdateEmployee updates an employee's details
func UpdateEmployee(c *fiber.Ctx) error {
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
		Name         *string `json:"name"`
		Email        *string `json:"email"`
		Department   *string `json:"department"`
		EmployeeCode *string `json:"employee_code"`
		IsActive     *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		employee.Name = *reqData.Name
	}
	if reqData.Email != nil {
		employee.Email = *reqData.Email
	}
	if reqData.Department != nil {
		employee.Department = *reqData.Department
	}
	if reqData.EmployeeCode != nil {
		employee.EmployeeCode = *reqData.EmployeeCode
	}
	if reqData.IsActive != nil {
		employee.IsActive = *reqData.IsActive
	}

	if err := db.Save(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update employee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee updated successfully!", employee)
}

// DeleteEmployee removes an employee and cascades their progress records
func DeleteEmployee(c *fiber.Ctx) error {
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

	tx := db.Begin()

	// Delete related progress records first
	if err := tx.Where("employee_id = ?", employee.ID).Delete(&models.EmployeeProgress{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete employee!", nil)
	}
	if err := tx.Where("employee_id = ?", employee.ID).Delete(&models.EmployeeNote{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete employee!", nil)
	}

	employee.IsDeleted = true
	employee.IsActive = false
	if err := tx.Save(&employee).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete employee!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee deleted successfully!", nil)
}
