// Package database opens the gorm connection backing the account store and
// the ledger.
package database

import (
	"errors"
	"time"

	infrarepo "github.com/jvmonteiro/minipay/infra/repository"
	"github.com/jvmonteiro/minipay/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens a postgres connection and migrates the schema.
func New(cnf config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := connection.AutoMigrate(
		&infrarepo.AccountType{},
		&infrarepo.Account{},
		&infrarepo.Transfer{},
	); err != nil {
		return nil, err
	}

	return connection, nil
}
