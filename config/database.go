package config

import (
	"hrms-lite-backend/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the MySQL connection and migrates the schema.
func ConnectDB(cfg *Config, log *zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.URL), &gorm.Config{
		// Surface duplicate-entry and FK failures as gorm sentinel errors
		// so sqlerr can classify them
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("connected to the database")

	// Auto migration: create tables and unique indexes from the model structs
	if err := db.AutoMigrate(&model.Employee{}, &model.Attendance{}); err != nil {
		return nil, err
	}

	return db, nil
}
