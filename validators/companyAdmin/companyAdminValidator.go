package companyAdminValidator

import (
	"regexp"
	"sat/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateEmployee validates an employee creation request
func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Email        string `json:"email"`
			Department   string `json:"department"`
			EmployeeCode string `json:"employee_code"`
			Password     string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Department = strings.TrimSpace(reqData.Department)
		reqData.EmployeeCode = strings.TrimSpace(reqData.EmployeeCode)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email format!"
		}

		if reqData.Password != "" && len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEmployee", reqData)
		return c.Next()
	}
}

// EmployeeID validates the employee ID path param
func EmployeeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeIDStr := strings.TrimSpace(c.Params("employeeId"))
		if employeeIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Employee ID is required!", nil)
		}

		employeeID, err := strconv.Atoi(employeeIDStr)
		if err != nil || employeeID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Employee ID!", nil)
		}

		c.Locals("employeeID", employeeID)
		return c.Next()
	}
}

// AssignTraining validates a training assignment request
func AssignTraining() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmployeeIDs []uint `json:"employee_ids"`
			ModuleIDs   []uint `json:"module_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.EmployeeIDs) == 0 {
			errors["employee_ids"] = "At least one employee ID is required!"
		}
		if len(reqData.ModuleIDs) == 0 {
			errors["module_ids"] = "At least one module ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// ResetProgress validates the employee and module ID path params
func ResetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := strconv.Atoi(strings.TrimSpace(c.Params("employeeId")))
		if err != nil || employeeID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Employee ID!", nil)
		}

		moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("moduleId")))
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("employeeID", employeeID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
