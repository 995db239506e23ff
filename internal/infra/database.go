package infra

import (
	"fmt"

	"lavapos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection for the configured driver and runs
// AutoMigrate. sqlite covers single-location deployments and local
// development; postgres is for anything shared.
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("driver de base de datos no soportado: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates all tables. UUID primary keys are assigned
// in BeforeCreate hooks, so the schema works identically on both drivers.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Customer{},
		&model.Vehicle{},
		&model.WashService{},
		&model.InventoryItem{},
		&model.StockMovement{},
		&model.Supplier{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.Sale{},
		&model.SaleLineItem{},
		&model.User{},
	)
}
