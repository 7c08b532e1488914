package employeeRoutes

import (
	controllers "sat/controllers/employee"
	"sat/middleware"
	validators "sat/validators/employee"

	"github.com/gofiber/fiber/v2"
)

// SetupEmployeeRoutes sets up all employee-facing routes. Every route is
// scoped to the employee ID carried in the token.
func SetupEmployeeRoutes(app *fiber.App) {
	employeeGroup := app.Group("/api/employee/:employeeId",
		middleware.JWTMiddleware,
		middleware.RequireRole(middleware.RoleEmployee),
		middleware.RequireEmployeeScope,
	)

	employeeGroup.Get("/profile", controllers.GetProfile)
	employeeGroup.Get("/dashboard", controllers.GetDashboard)
	employeeGroup.Get("/report", controllers.DownloadProgressReport)
	employeeGroup.Get("/progress", controllers.GetProgress)

	// Module catalog
	employeeGroup.Get("/modules", controllers.GetModules)
	employeeGroup.Get("/modules/:moduleId", validators.ModuleID(), controllers.GetModule)

	// Progress tracking
	moduleGroup := employeeGroup.Group("/modules/:moduleId")
	moduleGroup.Get("/progress", validators.ModuleID(), controllers.GetModuleProgress)
	moduleGroup.Put("/progress", validators.UpdateProgress(), controllers.UpdateProgress)
	moduleGroup.Get("/notes", validators.ModuleID(), controllers.GetNotes)
	moduleGroup.Put("/notes", validators.ModuleID(), controllers.SaveNotes)

	// Quiz & certificates
	moduleGroup.Post("/quiz/submit", validators.SubmitQuiz(), controllers.SubmitQuiz)
	employeeGroup.Get("/certificates", controllers.GetCertificates)
	employeeGroup.Get("/certificates/:moduleId", validators.ModuleID(), controllers.GetCertificate)
}
