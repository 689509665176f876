package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the primary database connection and stores it in the
// package-level DB handle. TranslateError is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey across drivers.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}
