package companyAdminRoutes

import (
	controllers "sat/controllers/companyAdmin"
	"sat/middleware"
	validators "sat/validators/companyAdmin"

	"github.com/gofiber/fiber/v2"
)

// SetupCompanyAdminRoutes sets up all company admin routes. Every route is
// scoped to the company ID carried in the token.
func SetupCompanyAdminRoutes(app *fiber.App) {
	companyGroup := app.Group("/api/company/:companyId",
		middleware.JWTMiddleware,
		middleware.RequireRole(middleware.RoleCompanyAdmin),
		middleware.RequireCompanyScope,
	)

	// Employee management
	employeeGroup := companyGroup.Group("/employees")
	employeeGroup.Get("/", controllers.ListEmployees)
	employeeGroup.Post("/", validators.CreateEmployee(), controllers.CreateEmployee)
	employeeGroup.Put("/:employeeId", validators.EmployeeID(), controllers.UpdateEmployee)
	employeeGroup.Delete("/:employeeId", validators.EmployeeID(), controllers.DeleteEmployee)
	employeeGroup.Post("/import", controllers.BulkImportEmployees)

	// Employee passwords
	employeeGroup.Get("/:employeeId/password", validators.EmployeeID(), controllers.GetEmployeePasswordInfo)
	employeeGroup.Put("/:employeeId/password", validators.EmployeeID(), controllers.UpdateEmployeePassword)
	companyGroup.Post("/passwords/bulk/reset", controllers.BulkResetPasswords)

	// Training
	companyGroup.Get("/modules", controllers.GetTrainingModules)
	companyGroup.Post("/assign-training", validators.AssignTraining(), controllers.AssignTraining)
	companyGroup.Get("/progress-report", controllers.GetProgressReport)
	companyGroup.Post("/employees/:employeeId/modules/:moduleId/reset", validators.ResetProgress(), controllers.ResetProgress)
}
