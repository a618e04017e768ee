package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/config"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// Connect opens the database and migrates the schema. TranslateError
// lets the stores map unique-index violations to gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Resident{},
		&models.Hostel{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
