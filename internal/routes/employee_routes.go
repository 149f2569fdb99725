package routes

import (
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(repo)

	api := app.Group("/api/employees")

	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
