package db

import (
	"github.com/deckform/deckform/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

// ConnectSQLite opens a sqlite database, typically an in-memory one for
// tests.
func ConnectSQLite(dsn string) error {
	var err error

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	tables := []interface{}{
		&models.User{},
		&models.Session{},
		&models.Deck{},
		&models.Card{},
		&models.Form{},
		&models.Field{},
		&models.Response{},
		&models.ShareLink{},
	}

	migrator := DB.Migrator()

	for _, model := range tables {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
