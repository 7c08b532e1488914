package masterAdminController

import (
	"sat/database"
	"sat/middleware"
	"sat/services"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the master admin dashboard counters
func GetDashboard(c *fiber.Ctx) error {
	overview := services.NewReports(database.Database.Db).Overview()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_companies":         overview.TotalCompanies,
		"total_employees":         overview.TotalEmployees,
		"total_modules":           overview.TotalModules,
		"overall_completion_rate": overview.OverallCompletionRate,
	})
}

// GetOverviewReport returns the platform-wide completion report
func GetOverviewReport(c *fiber.Ctx) error {
	overview := services.NewReports(database.Database.Db).Overview()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overview report generated successfully!", overview)
}
