package controllers

import (
	"eventhub/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Event{}, &models.Registration{})
}
