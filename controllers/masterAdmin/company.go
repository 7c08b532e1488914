package masterAdminController

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

// ListCompanies returns all companies with their employee headcount
func ListCompanies(c *fiber.Ctx) error {
	db := database.Database.Db

	var companies []models.Company
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	type companyWithStats struct {
		models.Company
		ActiveEmployees int64 `json:"active_employees"`
	}

	result := make([]companyWithStats, len(companies))
	for i, company := range companies {
		var headcount int64
		db.Model(&models.Employee{}).
			Where("company_id = ? AND is_active = ? AND is_deleted = ?", company.ID, true, false).
			Count(&headcount)
		result[i] = companyWithStats{Company: company, ActiveEmployees: headcount}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", fiber.Map{
		"companies": result,
		"total":     len(result),
	})
}

// CreateCompany registers a new company and returns the generated admin password
func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name          string `json:"name"`
		ContactEmail  string `json:"contact_email"`
		Industry      string `json:"industry"`
		EmployeeCount int    `json:"employee_count"`
		WebhookURL    string `json:"webhook_url"`
		AdminPassword string `json:"admin_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var existing models.Company
	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company name is already registered!", nil)
	}

	password := reqData.AdminPassword
	if password == "" {
		password = utils.GeneratePassword(10)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	company := models.Company{
		Name:          reqData.Name,
		ContactEmail:  reqData.ContactEmail,
		AdminPassword: string(hashedPassword),
		Industry:      reqData.Industry,
		EmployeeCount: reqData.EmployeeCount,
		WebhookURL:    reqData.WebhookURL,
	}

	if err := db.Create(&company).Error; err != nil {
		log.Printf("Error saving company to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	utils.SendCompanyWelcomeEmail(company.ContactEmail, company.Name, company.ID, password)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", fiber.Map{
		"company":        company,
		"admin_password": password,
	})
}

// UpdateCompany updates a company's details
func UpdateCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reqData := new(struct {
		Name          *string `json:"name"`
		ContactEmail  *string `json:"contact_email"`
		Industry      *string `json:"industry"`
		EmployeeCount *int    `json:"employee_count"`
		WebhookURL    *string `json:"webhook_url"`
		IsActive      *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		company.Name = *reqData.Name
	}
	if reqData.ContactEmail != nil {
		company.ContactEmail = *reqData.ContactEmail
	}
	if reqData.Industry != nil {
		company.Industry = *reqData.Industry
	}
	if reqData.EmployeeCount != nil {
		company.EmployeeCount = *reqData.EmployeeCount
	}
	if reqData.WebhookURL != nil {
		company.WebhookURL = *reqData.WebhookURL
	}
	if reqData.IsActive != nil {
		company.IsActive = *reqData.IsActive
	}

	if err := db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

// DeleteCompany removes a company and cascades employees and their progress
func DeleteCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	if err := deleteCompanyCascade(&company); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully!", nil)
}

// deleteCompanyCascade soft-deletes a company and removes its employees'
// progress records and notes
func deleteCompanyCascade(company *models.Company) error {
	db := database.Database.Db
	tx := db.Begin()

	employeeIDs := tx.Model(&models.Employee{}).Select("id").Where("company_id = ?", company.ID)

	if err := tx.Where("employee_id IN (?)", employeeIDs).Delete(&models.EmployeeProgress{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("employee_id IN (?)", employeeIDs).Delete(&models.EmployeeNote{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Employee{}).Where("company_id = ?", company.ID).
		Updates(map[string]interface{}{"is_deleted": true, "is_active": false}).Error; err != nil {
		tx.Rollback()
		return err
	}

	company.IsDeleted = true
	company.IsActive = false
	if err := tx.Save(company).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// BulkCompanyAction applies activate/deactivate/delete to multiple companies
func BulkCompanyAction(c *fiber.Ctx) error {
	reqData := new(struct {
		CompanyIDs []uint `json:"company_ids"`
		Action     string `json:"action"` // activate, deactivate, delete
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.CompanyIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company IDs and action are required!", nil)
	}

	db := database.Database.Db
	affected := 0

	for _, companyID := range reqData.CompanyIDs {
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
			continue
		}

		switch reqData.Action {
		case "activate":
			company.IsActive = true
			if err := db.Save(&company).Error; err == nil {
				affected++
			}
		case "deactivate":
			company.IsActive = false
			if err := db.Save(&company).Error; err == nil {
				affected++
			}
		case "delete":
			if err := deleteCompanyCascade(&company); err == nil {
				affected++
			}
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown action!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk action applied!", fiber.Map{
		"affected_count": affected,
	})
}
