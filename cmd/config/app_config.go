package config

import (
	"os"
	"time"

	"kaloria-backend/internal/api/handlers"
	"kaloria-backend/internal/api/routes"
	"kaloria-backend/internal/middleware"
	"kaloria-backend/internal/utils"
	"kaloria-backend/internal/utils/storage"
	"kaloria-backend/pkg/export"
	"kaloria-backend/pkg/foodlog"
	"kaloria-backend/pkg/jwt"
	"kaloria-backend/pkg/profile"
	"kaloria-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	foodlogRepository := foodlog.NewFoodlogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	profileService := profile.NewProfileService(profileRepository)
	foodlogService := foodlog.NewFoodlogService(foodlogRepository, profileRepository, s3)
	exportService := export.NewExportService(foodlogRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	foodlogHandler := handlers.NewFoodlogHandler(foodlogService, validator)
	exportHandler := handlers.NewExportHandler(exportService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ProfileHandler: profileHandler,
		FoodlogHandler: foodlogHandler,
		ExportHandler:  exportHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
