package database

import (
	"log"
	"strings"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the pure-Go "sqlite" driver used below
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Supplier{},
		&domain.Vehicle{},
		&domain.Driver{},
		&domain.InventoryItem{},
		&domain.MaintenanceRecord{},
		&domain.ServiceOrder{},
		&domain.ServiceOrderItem{},
		&domain.PurchaseRequest{},
	)
}
