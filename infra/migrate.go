package infra

import (
	"fmt"

	"gin-items/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the users and items tables. Users go first so the
// items.owner_id foreign key has something to reference.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
