package masterAdminRoutes

import (
	controllers "sat/controllers/masterAdmin"
	"sat/middleware"
	validators "sat/validators/masterAdmin"

	"github.com/gofiber/fiber/v2"
)

// SetupMasterAdminRoutes sets up all platform admin routes
func SetupMasterAdminRoutes(app *fiber.App) {
	masterGroup := app.Group("/api/master", middleware.JWTMiddleware, middleware.RequireRole(middleware.RoleMaster))

	// Dashboard & reporting
	masterGroup.Get("/dashboard", controllers.GetDashboard)
	masterGroup.Get("/reports/overview", controllers.GetOverviewReport)

	// Company management
	companyGroup := masterGroup.Group("/companies")
	companyGroup.Get("/", controllers.ListCompanies)
	companyGroup.Post("/", validators.CreateCompany(), controllers.CreateCompany)
	companyGroup.Put("/:companyId", validators.CompanyID(), controllers.UpdateCompany)
	companyGroup.Delete("/:companyId", validators.CompanyID(), controllers.DeleteCompany)
	companyGroup.Post("/bulk/action", controllers.BulkCompanyAction)

	// Company admin passwords
	companyGroup.Get("/:companyId/password", validators.CompanyID(), controllers.GetCompanyPasswordInfo)
	companyGroup.Put("/:companyId/password", validators.CompanyID(), controllers.UpdateCompanyPassword)
	companyGroup.Post("/bulk/password/reset", controllers.BulkResetCompanyPasswords)
	masterGroup.Get("/password/policy", controllers.GetPasswordPolicy)

	// Training module management
	moduleGroup := masterGroup.Group("/modules")
	moduleGroup.Get("/", controllers.ListModules)
	moduleGroup.Post("/", controllers.CreateModule)
	moduleGroup.Put("/:moduleId", validators.ModuleID(), controllers.UpdateModule)
	moduleGroup.Delete("/:moduleId", validators.ModuleID(), controllers.DeleteModule)
}
