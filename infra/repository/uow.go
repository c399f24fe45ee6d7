// Package repository provides the GORM-backed unit of work and error mapping.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/ledger/infra/repository/account"
	transactionrepo "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
//
// Repository access lives on the UoW so every repository obtained inside Do is
// bound to the same DB session/transaction; resolving repositories any other
// way would silently break atomicity. The registry keeps the wiring in one
// place and makes the UoW easy to mock in tests.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return accountrepo.New(db)
			},
			reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return transactionrepo.New(db)
			},
		},
	}
}

// Do runs fn inside a database transaction at read-committed isolation; the
// row locks taken via GetForUpdate make concurrent writers of one account
// strictly serial. fn receives a UoW scoped to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	return MapGormErrorToDomain(err)
}

// GetRepository provides generic access to repositories using the transaction
// session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.TransactionRepository), nil
}
