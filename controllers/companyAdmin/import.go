package companyAdminController

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"sat/config"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// BulkImportEmployees imports employees from an uploaded CSV file with
// columns: name, email, department, employee_code. Rows with missing fields
// or duplicate emails are skipped and reported, not fatal.
func BulkImportEmployees(c *fiber.Ctx) error {
	companyID, err := companyScope(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File must be a CSV!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is empty!", nil)
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV must have a name column!", nil)
	}
	if _, ok := columns["email"]; !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV must have an email column!", nil)
	}

	db := database.Database.Db
	importedCount := 0
	importErrors := []string{}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	// Row 1 is the header
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: malformed row", rowNum))
			continue
		}

		name := field(row, "name")
		email := field(row, "email")
		if name == "" || email == "" {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: Missing required fields", rowNum))
			continue
		}

		var existing models.Employee
		if err := db.Where("company_id = ? AND email = ? AND is_deleted = ?", companyID, email, false).
			First(&existing).Error; err == nil {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: Email %s already exists", rowNum, email))
			continue
		}

		password := utils.GeneratePassword(8)
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			importErrors = append(importErrors, fmt.Sprintf("Row %d: failed to process", rowNum))
			continue
		}

		employee := models.Employee{
			CompanyID:    companyID,
			Name:         name,
			Email:        email,
			Password:     string(hashedPassword),
			Department:   field(row, "department"),
			EmployeeCode: field(row, "employee_code"),
		}

		if err := db.Create(&employee).Error; err != nil {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: failed to save", rowNum))
			continue
		}

		utils.SendWelcomeEmail(employee.Email, employee.Name, employee.ID, password)
		importedCount++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Import finished!", fiber.Map{
		"imported_count": importedCount,
		"errors":         importErrors,
	})
}
