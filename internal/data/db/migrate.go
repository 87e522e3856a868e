package db

import (
	"fmt"

	types "github.com/campusbridge/campus-bridge/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.User{},
		&types.Course{},
		&types.CourseStudent{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
