package main

import (
	"fmt"

	"hrms-lite-backend/config"
	"hrms-lite-backend/internal/logger"
	"hrms-lite-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	db, err := config.ConnectDB(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	routes.SetupHealthRoutes(app)
	routes.SetupEmployeeRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db)

	log.Info().Int("port", cfg.Server.Port).Msg("server listening")
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
