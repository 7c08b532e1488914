package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the role claim set by JWTMiddleware
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if role != requiredRole {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}

// RequireCompanyScope ensures a company admin token only reaches its own
// company's routes. The company ID path param must match the token claim.
func RequireCompanyScope(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paramID, err := strconv.Atoi(c.Params("companyId"))
	if err != nil || paramID <= 0 || uint(paramID) != companyID {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied for this company!", nil)
	}

	return c.Next()
}

// RequireEmployeeScope ensures an employee token only reaches its own routes
func RequireEmployeeScope(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("subjectId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paramID, err := strconv.Atoi(c.Params("employeeId"))
	if err != nil || paramID <= 0 || uint(paramID) != employeeID {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied for this employee!", nil)
	}

	return c.Next()
}
