package main

import (
	"log"

	"shikkha/config"
	"shikkha/database"
	"shikkha/routers/affiliateRoutes"
	"shikkha/routers/attendanceRoutes"
	"shikkha/routers/authRoutes"
	"shikkha/routers/communityRoutes"
	"shikkha/routers/courseRoutes"
	"shikkha/routers/enrollmentRoutes"
	"shikkha/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Idempotency-Key",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	attendanceRoutes.SetupAttendanceRoutes(app)
	affiliateRoutes.SetupAffiliateRoutes(app)
	communityRoutes.SetupCommunityRoutes(app)

	utils.InitializePromoScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
