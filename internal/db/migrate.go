package db

import (
	"sales_dashboard/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
	"gorm.io/gorm/logger"  // GORM logger levels
)

// Connect opens a MySQL connection through GORM and verifies it with a ping
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Only slow queries and errors
	})
}

// Migrate creates or updates the transactions table
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	return db.AutoMigrate(&domain.Transaction{})
}
