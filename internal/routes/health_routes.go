package routes

import (
	"hrms-lite-backend/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App) {
	app.Get("/health", handler.Health)
}
