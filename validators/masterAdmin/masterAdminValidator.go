package masterAdminValidator

import (
	"regexp"
	"sat/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateCompany validates a company registration request
func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string `json:"name"`
			ContactEmail  string `json:"contact_email"`
			Industry      string `json:"industry"`
			EmployeeCount int    `json:"employee_count"`
			WebhookURL    string `json:"webhook_url"`
			AdminPassword string `json:"admin_password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.ContactEmail = strings.TrimSpace(strings.ToLower(reqData.ContactEmail))
		reqData.Industry = strings.TrimSpace(reqData.Industry)
		reqData.WebhookURL = strings.TrimSpace(reqData.WebhookURL)

		if reqData.Name == "" {
			errors["name"] = "Company name is required!"
		} else if len(reqData.Name) < 2 {
			errors["name"] = "Company name must be at least 2 characters long!"
		}

		if reqData.ContactEmail == "" {
			errors["contact_email"] = "Contact email is required!"
		} else if !emailRegex.MatchString(reqData.ContactEmail) {
			errors["contact_email"] = "Invalid email format!"
		}

		if reqData.EmployeeCount < 0 {
			errors["employee_count"] = "Employee count must not be negative!"
		}

		if reqData.WebhookURL != "" && !strings.HasPrefix(reqData.WebhookURL, "http") {
			errors["webhook_url"] = "Webhook URL must be a valid http(s) URL!"
		}

		if reqData.AdminPassword != "" && len(reqData.AdminPassword) < 6 {
			errors["admin_password"] = "Admin password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

// CompanyID validates the company ID path param
func CompanyID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyIDStr := strings.TrimSpace(c.Params("companyId"))
		if companyIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company ID is required!", nil)
		}

		companyID, err := strconv.Atoi(companyIDStr)
		if err != nil || companyID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Company ID!", nil)
		}

		c.Locals("companyID", companyID)
		return c.Next()
	}
}

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
