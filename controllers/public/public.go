package publicController

import (
	"sat/database"
	"sat/middleware"
	"sat/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports service and database status
func Health(c *fiber.Ctx) error {
	dbStatus := "up"
	if sqlDB, err := database.Database.Db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service is healthy!", fiber.Map{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// catalogModule is the public module payload. Quiz content stays hidden,
// only the question count is exposed.
type catalogModule struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	DifficultyLevel string `json:"difficulty_level"`
	Category        string `json:"category"`
	PassingScore    int    `json:"passing_score"`
	QuestionCount   int    `json:"question_count"`
}

// ListTrainingModules returns the public catalog of active modules
func ListTrainingModules(c *fiber.Ctx) error {
	var modules []models.TrainingModule
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("category, title").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	catalog := make([]catalogModule, len(modules))
	for i := range modules {
		entry := catalogModule{
			ID:              modules[i].ID,
			Title:           modules[i].Title,
			Description:     modules[i].Description,
			DurationMinutes: modules[i].DurationMinutes,
			DifficultyLevel: modules[i].DifficultyLevel,
			Category:        modules[i].Category,
			PassingScore:    modules[i].PassingScore,
		}
		if questions, err := modules[i].QuestionSet(); err == nil {
			entry.QuestionCount = len(questions)
		}
		catalog[i] = entry
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": catalog,
		"total":   len(catalog),
	})
}
