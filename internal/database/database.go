package database

import (
	"fmt"
	"strings"
	"time"

	"starwars/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the store for a connection string: PostgreSQL when
// databaseURL is set, otherwise an SQLite file at sqlitePath.
func Dialector(databaseURL, sqlitePath string) gorm.Dialector {
	if databaseURL != "" {
		if strings.HasPrefix(databaseURL, "postgres://") {
			databaseURL = "postgresql://" + strings.TrimPrefix(databaseURL, "postgres://")
		}
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(sqlitePath)
}

// Open connects to the store and migrates the schema. SQL errors are logged
// through log; record-not-found is expected and stays quiet.
func Open(dialector gorm.Dialector, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the user, character, planet and favorite tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Character{}, &models.Planet{}, &models.Favorite{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
