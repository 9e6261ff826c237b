package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every platform entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&ItemRequest{},
		&Item{},
		&Booking{},
		&Comment{},
	)
}
