package routes

import (
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(attendanceRepo, employeeRepo)

	api := app.Group("/api/attendance")

	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	// Per-employee listing; the bare collection route above wins for /api/attendance
	api.Get("/:employeeId", hdl.ListByEmployee)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
