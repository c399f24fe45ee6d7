// Package infra wires the relational store.
package infra

import (
	"errors"
	"time"

	accountmodel "github.com/amirasaad/ledger/infra/repository/account"
	transactionmodel "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a pooled GORM connection to Postgres. TranslateError
// is on so unique-key violations surface as gorm.ErrDuplicatedKey, which the
// repositories map to domain errors.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
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

	return connection, nil
}

// Migrate creates or updates the accounts and transactions tables, including
// the FK from transactions to accounts and the account_id index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&accountmodel.Account{}, &transactionmodel.Transaction{})
}
