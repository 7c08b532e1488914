package employeeController

import (
	"errors"
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/services"
	"sat/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades a quiz submission and applies the progress transition
func SubmitQuiz(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	reqData := new(struct {
		Answers map[string]interface{} `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Answers == nil {
		reqData.Answers = map[string]interface{}{}
	}

	ledger := services.NewProgressLedger(database.Database.Db)
	record, result, err := ledger.SubmitQuiz(employee.ID, uint(moduleID), reqData.Answers)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		if errors.Is(err, services.ErrAlreadyCompleted) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module already completed!", fiber.Map{
				"progress": record,
			})
		}
		if errors.Is(err, services.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Submission is being processed, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	message := "Quiz failed. Please try again."
	if result.Passed {
		message = "Quiz completed successfully!"

		var module models.TrainingModule
		if err := database.Database.Db.Where("id = ?", moduleID).First(&module).Error; err == nil {
			utils.SendCertificateEmail(employee.Email, employee.Name, module.Title, result.Score)
			utils.NotifyCompletion(employee, &module, result.Score)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"score":           result.Score,
		"passed":          result.Passed,
		"correct_answers": result.CorrectCount,
		"total_questions": result.TotalCount,
		"progress":        record,
	})
}
