package companyAdminController

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"sat/config"
	"sat/database"
	"sat/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupImportTest(t *testing.T) (*fiber.App, *models.Company) {
	t.Helper()

	config.AppConfig = &config.Config{SaltRound: bcrypt.MinCost}

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Company{}, &models.Employee{}))
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	company := &models.Company{Name: "acme", ContactEmail: "admin@acme.test", IsActive: true}
	require.NoError(t, db.Create(company).Error)

	app := fiber.New()
	app.Post("/import", func(c *fiber.Ctx) error {
		c.Locals("companyId", company.ID)
		return c.Next()
	}, BulkImportEmployees)

	return app, company
}

func csvUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestBulkImportEmployees(t *testing.T) {
	app, company := setupImportTest(t)
	db := database.Database.Db

	// Eve already exists, her row in the CSV must be skipped
	require.NoError(t, db.Create(&models.Employee{
		CompanyID: company.ID, Name: "Eve", Email: "eve@acme.test", Password: "hashed", IsActive: true,
	}).Error)

	csv := "name,email,department,employee_code\n" +
		"Ana,ana@acme.test,Security,E1\n" +
		"Bob,,IT,E2\n" +
		"bad\n" +
		"Eve,eve@acme.test,HR,E3\n" +
		"Cal,cal@acme.test,IT,E4\n" +
		"Dup,cal@acme.test,IT,E5\n"
	body, contentType := csvUpload(t, "employees.csv", csv)

	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Status bool `json:"status"`
		Data   struct {
			ImportedCount int      `json:"imported_count"`
			Errors        []string `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Status)

	// Ana and Cal import; missing email, malformed row, Eve's duplicate and
	// the in-file duplicate of Cal's email are each reported
	assert.Equal(t, 2, payload.Data.ImportedCount)
	assert.Len(t, payload.Data.Errors, 4)

	var count int64
	db.Model(&models.Employee{}).Where("company_id = ?", company.ID).Count(&count)
	assert.EqualValues(t, 3, count)

	var cal models.Employee
	require.NoError(t, db.Where("email = ?", "cal@acme.test").First(&cal).Error)
	assert.Equal(t, "Cal", cal.Name)
	assert.Equal(t, "IT", cal.Department)
	assert.Equal(t, "E4", cal.EmployeeCode)
}

func TestBulkImportRejectsNonCSV(t *testing.T) {
	app, _ := setupImportTest(t)

	body, contentType := csvUpload(t, "employees.txt", "name,email\nAna,ana@acme.test\n")

	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBulkImportRequiresEmailColumn(t *testing.T) {
	app, _ := setupImportTest(t)

	body, contentType := csvUpload(t, "employees.csv", "name,department\nAna,Security\n")

	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
