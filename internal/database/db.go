package database

import (
	"salesapi/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM. The
// returned handle is injected into the repositories; connection failure
// is surfaced to the caller instead of exiting the process here.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// The three root entities are externally managed; the migration only
	// keeps a local schema in step for development setups.
	if err := db.AutoMigrate(
		&model.Vendor{},
		&model.ParentProduct{},
		&model.Order{},
		&model.CartItem{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
