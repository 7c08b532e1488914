package authRoutes

import (
	authControllers "sat/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/master/login", authControllers.MasterLogin)
	authGroup.Post("/company/login", authControllers.CompanyLogin)
	authGroup.Post("/employee/login", authControllers.EmployeeLogin)
	authGroup.Post("/forgot/password", authControllers.ForgotPassword)
	authGroup.Post("/reset/password", authControllers.ResetPassword)
}
