package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes and returns the PostgreSQL connection using GORM.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func InitDB(connStr string) (*gorm.DB, error) {
	if connStr == "" {
		return nil, errors.New("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "connect to PostgreSQL")
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping PostgreSQL")
	}

	logrus.Info("Successfully connected to PostgreSQL!")
	return db, nil
}

// CloseDB closes the underlying database connection.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting SQL DB from GORM")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing PostgreSQL connection")
		return
	}
	logrus.Info("PostgreSQL connection closed.")
}
