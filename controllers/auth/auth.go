package authController

import (
	"log"
	"sat/config"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MasterLogin authenticates the platform master administrator
func MasterLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Username != config.AppConfig.MasterAdminUser || reqData.Password != config.AppConfig.MasterAdminPassword {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(0, 0, reqData.Username, middleware.RoleMaster)
	if err != nil {
		log.Printf("Error generating master token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
	})
}

// CompanyLogin authenticates a company administrator against the company's
// admin password
func CompanyLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		CompanyID uint   `json:"company_id"`
		Password  string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CompanyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	if !company.IsActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Company account is deactivated!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.AdminPassword), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(company.ID, company.ID, company.Name, middleware.RoleCompanyAdmin)
	if err != nil {
		log.Printf("Error generating company token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":   token,
		"company": company,
	})
}

// EmployeeLogin authenticates an employee
func EmployeeLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		EmployeeID uint   `json:"employee_id"`
		Password   string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EmployeeID, false).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	if !employee.IsActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Employee account is deactivated!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password!", nil)
	}

	now := time.Now().UTC()
	employee.LastLogin = &now
	db.Save(&employee)

	token, err := middleware.GenerateJWT(employee.ID, employee.CompanyID, employee.Name, middleware.RoleEmployee)
	if err != nil {
		log.Printf("Error generating employee token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":    token,
		"employee": employee,
	})
}

// ForgotPassword creates a single-use reset token and emails it
func ForgotPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&employee).Error; err != nil {
		// Do not reveal whether the email exists
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset link has been sent.", nil)
	}

	resetToken := models.PasswordResetToken{
		EmployeeID: employee.ID,
		Token:      uuid.NewString(),
		ExpiresAt:  time.Now().UTC().Add(1 * time.Hour),
	}

	if err := db.Create(&resetToken).Error; err != nil {
		log.Printf("Error creating reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	utils.SendPasswordResetEmail(employee.Email, employee.Name, resetToken.Token)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email exists, a reset link has been sent.", nil)
}

// ResetPassword consumes a reset token and sets a new password
func ResetPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if len(reqData.NewPassword) < 6 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password must be at least 6 characters long!", nil)
	}

	db := database.Database.Db

	var resetToken models.PasswordResetToken
	if err := db.Where("token = ? AND used = ?", reqData.Token, false).First(&resetToken).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired token!", nil)
	}

	if time.Now().UTC().After(resetToken.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired token!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&models.Employee{}).Where("id = ?", resetToken.EmployeeID).
		Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	resetToken.Used = true
	db.Save(&resetToken)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully!", nil)
}
