package employeeValidator

import (
	"sat/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ModuleID validates the training module ID path param
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("moduleId"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// UpdateProgress validates a playback progress update request
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("moduleId"))
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Progress     *int `json:"progress"`
			LastPosition *int `json:"last_position"`
			TimeSpent    *int `json:"time_spent_minutes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Progress != nil && (*reqData.Progress < 0 || *reqData.Progress > 100) {
			errors["progress"] = "Progress must be between 0 and 100!"
		}
		if reqData.LastPosition != nil && *reqData.LastPosition < 0 {
			errors["last_position"] = "Last position must not be negative!"
		}
		if reqData.TimeSpent != nil && *reqData.TimeSpent < 0 {
			errors["time_spent_minutes"] = "Time spent must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates a quiz submission request
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("moduleId"))
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
