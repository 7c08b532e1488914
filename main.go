package main

import (
	"sat/config"
	"sat/database"
	authRoutes "sat/routers/authRoutes"
	companyAdminRoutes "sat/routers/companyAdminRoutes"
	employeeRoutes "sat/routers/employeeRoutes"
	masterAdminRoutes "sat/routers/masterAdminRoutes"
	publicRoutes "sat/routers/publicRoutes"
	"sat/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	publicRoutes.SetupPublicRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	masterAdminRoutes.SetupMasterAdminRoutes(app)
	companyAdminRoutes.SetupCompanyAdminRoutes(app)
	employeeRoutes.SetupEmployeeRoutes(app)

	// Reminder and digest cron jobs
	utils.InitializeReminderSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
