package db

import (
	"github.com/beacon-dev/beacon/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate creates any missing tables. StatusHistory is migrated even though
// nothing writes it yet; the schema reserves it for hourly snapshots.
func Migrate(conn *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.SiteSettings{},
		&models.Service{},
		&models.Incident{},
		&models.IncidentUpdate{},
		&models.StatusHistory{},
	}

	migrator := conn.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := conn.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
