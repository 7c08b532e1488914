package publicRoutes

import (
	controllers "sat/controllers/public"

	"github.com/gofiber/fiber/v2"
)

func SetupPublicRoutes(app *fiber.App) {
	app.Get("/api/health", controllers.Health)
	app.Get("/api/training-modules", controllers.ListTrainingModules)
}
