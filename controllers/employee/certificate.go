package employeeController

import (
	"errors"
	"sat/database"
	"sat/middleware"
	"sat/services"

	"github.com/gofiber/fiber/v2"
)

// GetCertificates returns certificates for all completed modules
func GetCertificates(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	certificates, err := services.NewCertificates(database.Database.Db).List(employee.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
	})
}

// GetCertificate returns the certificate for one completed module
func GetCertificate(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	certificate, err := services.NewCertificates(database.Database.Db).Issue(employee.ID, uint(moduleID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress found for this module!", nil)
		}
		if errors.Is(err, services.ErrNotCompleted) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module not completed yet!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully!", fiber.Map{
		"certificate": certificate,
	})
}
