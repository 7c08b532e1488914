package masterAdminController

import (
	"encoding/json"
	"sat/database"
	"sat/middleware"
	"sat/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// moduleRequest is the create/update payload for a training module
type moduleRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	VideoURL        string            `json:"video_url"`
	DurationMinutes int               `json:"duration_minutes"`
	DifficultyLevel string            `json:"difficulty_level"`
	Category        string            `json:"category"`
	Questions       []models.Question `json:"quiz_questions"`
	PassingScore    *int              `json:"passing_score"`
	IsActive        *bool             `json:"is_active"`
}

// ListModules returns all training modules including inactive ones
func ListModules(c *fiber.Ctx) error {
	var modules []models.TrainingModule
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
		"total":   len(modules),
	})
}

// CreateModule creates a training module, validating the question set
func CreateModule(c *fiber.Ctx) error {
	reqData := new(moduleRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
	}

	questionsJSON, errMsg := encodeQuestions(reqData.Questions)
	if errMsg != "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"quiz_questions": errMsg})
	}

	module := models.TrainingModule{
		Title:           reqData.Title,
		Description:     reqData.Description,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
		DifficultyLevel: reqData.DifficultyLevel,
		Category:        reqData.Category,
		Questions:       questionsJSON,
	}
	if reqData.PassingScore != nil {
		if *reqData.PassingScore < 0 || *reqData.PassingScore > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{"passing_score": "Passing score must be between 0 and 100!"})
		}
		module.PassingScore = *reqData.PassingScore
	} else {
		module.PassingScore = 70
	}
	if reqData.IsActive != nil {
		module.IsActive = *reqData.IsActive
	} else {
		module.IsActive = true
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates a training module, re-validating the question set
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var module models.TrainingModule
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData := new(moduleRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		module.VideoURL = reqData.VideoURL
	}
	if reqData.DurationMinutes > 0 {
		module.DurationMinutes = reqData.DurationMinutes
	}
	if reqData.DifficultyLevel != "" {
		module.DifficultyLevel = reqData.DifficultyLevel
	}
	if reqData.Category != "" {
		module.Category = reqData.Category
	}
	if reqData.Questions != nil {
		questionsJSON, errMsg := encodeQuestions(reqData.Questions)
		if errMsg != "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"quiz_questions": errMsg})
		}
		module.Questions = questionsJSON
	}
	if reqData.PassingScore != nil {
		if *reqData.PassingScore < 0 || *reqData.PassingScore > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{"passing_score": "Passing score must be between 0 and 100!"})
		}
		module.PassingScore = *reqData.PassingScore
	}
	if reqData.IsActive != nil {
		module.IsActive = *reqData.IsActive
	}

	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes a module and cascades its progress records
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var module models.TrainingModule
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Where("module_id = ?", module.ID).Delete(&models.EmployeeProgress{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if err := tx.Where("module_id = ?", module.ID).Delete(&models.EmployeeNote{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	module.IsDeleted = true
	module.IsActive = false
	if err := tx.Save(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// encodeQuestions validates a question payload and returns its stored JSON form
func encodeQuestions(questions []models.Question) (datatypes.JSON, string) {
	if questions == nil {
		return datatypes.JSON("[]"), ""
	}

	// Assign ordinal IDs before validation so error messages are stable
	for i := range questions {
		if questions[i].ID == 0 {
			questions[i].ID = i + 1
		}
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, "Failed to encode questions!"
	}

	if _, err := models.ParseQuestions(raw); err != nil {
		return nil, err.Error()
	}

	return datatypes.JSON(raw), ""
}
