package routes

import (
	"kaloria-backend/internal/api/handlers"
	"kaloria-backend/internal/middleware"
	"kaloria-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ProfileHandler handlers.ProfileHandler
	FoodlogHandler handlers.FoodlogHandler
	ExportHandler  handlers.ExportHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Profile()
	c.FoodEntries()
	c.Export()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))

	profile.Post("/onboard", c.ProfileHandler.Onboard)
	profile.Post("/target", c.ProfileHandler.SetManualTarget)
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Delete("", c.ProfileHandler.ClearProfile)
}

func (c *Config) FoodEntries() {
	foodEntries := c.App.Group("/api/v1/food-entries", c.Middleware.AuthMiddleware(c.JWTService))

	foodEntries.Post("", c.FoodlogHandler.LogFood)
	foodEntries.Get("", c.FoodlogHandler.GetEntries)
	foodEntries.Delete("/:id", c.FoodlogHandler.DeleteEntry)

	foodEntries.Get("/summary", c.FoodlogHandler.GetDailySummary)
	foodEntries.Get("/history", c.FoodlogHandler.GetHistory)
}

func (c *Config) Export() {
	export := c.App.Group("/api/v1/export", c.Middleware.AuthMiddleware(c.JWTService))

	export.Get("/csv", c.ExportHandler.DownloadCSV)
	export.Post("/email", c.ExportHandler.EmailCSV)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
