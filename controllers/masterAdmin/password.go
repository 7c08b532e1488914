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

// GetCompanyPasswordInfo returns password metadata for one company admin
func GetCompanyPasswordInfo(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password info fetched!", fiber.Map{
		"company_id":            company.ID,
		"company_name":          company.Name,
		"contact_email":         company.ContactEmail,
		"has_password":          company.AdminPassword != "",
		"password_last_updated": company.UpdatedAt,
	})
}

// UpdateCompanyPassword sets a custom or generated admin password for a company
func UpdateCompanyPassword(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reqData := new(struct {
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newPassword := reqData.Password
	if newPassword == "" {
		newPassword = utils.GeneratePassword(10)
	} else if len(newPassword) < 6 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password must be at least 6 characters long!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	company.AdminPassword = string(hashedPassword)
	if err := db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company password updated successfully!", fiber.Map{
		"company_id":   company.ID,
		"company_name": company.Name,
		"new_password": newPassword,
	})
}

// BulkResetCompanyPasswords generates new admin passwords for multiple companies
func BulkResetCompanyPasswords(c *fiber.Ctx) error {
	reqData := new(struct {
		CompanyIDs []uint `json:"company_ids"`
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.CompanyIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company IDs are required!", nil)
	}

	db := database.Database.Db

	type resetResult struct {
		CompanyID   uint   `json:"company_id"`
		Name        string `json:"name"`
		NewPassword string `json:"new_password"`
	}

	results := []resetResult{}
	for _, companyID := range reqData.CompanyIDs {
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
			continue
		}

		newPassword := utils.GeneratePassword(10)
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
		if err != nil {
			continue
		}

		company.AdminPassword = string(hashedPassword)
		if err := db.Save(&company).Error; err != nil {
			continue
		}

		results = append(results, resetResult{
			CompanyID:   company.ID,
			Name:        company.Name,
			NewPassword: newPassword,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Passwords reset successfully!", fiber.Map{
		"reset_count": len(results),
		"results":     results,
	})
}

// GetPasswordPolicy returns the platform password policy
func GetPasswordPolicy(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password policy fetched!", fiber.Map{
		"min_length":        6,
		"generated_length":  10,
		"hashing_algorithm": "bcrypt",
		"reset_token_ttl":   "1h",
	})
}
