// Package repository defines the data-access contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines account data access with CQRS-style DTOs.
type AccountRepository interface {
	// Get retrieves an account by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetForUpdate retrieves an account under an exclusive row lock scoped to
	// the current unit of work, serializing concurrent writers of the same
	// account. Only meaningful inside UnitOfWork.Do.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// Create inserts a new account record with a zero balance.
	Create(ctx context.Context, create dto.AccountCreate) error

	// AddBalance applies a signed delta relative to the stored balance
	// (balance = balance + delta), never a read-modify-write in memory.
	AddBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

// TransactionRepository defines ledger-entry data access. Rows are append-only:
// there is deliberately no Update or Delete.
type TransactionRepository interface {
	// Get retrieves a transaction by its idempotency key.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// Create inserts a new ledger entry. A duplicate idempotency key surfaces
	// as account.ErrTransactionAlreadyExists.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByAccount returns all entries for an account ordered by occurred_at
	// descending, ties broken by insertion order (newest insert first).
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error)

	// CountLargeSince counts entries for an account with amount strictly above
	// threshold and occurred_at at or after since.
	CountLargeSince(ctx context.Context, accountID uuid.UUID, threshold decimal.Decimal, since time.Time) (int64, error)
}

// UnitOfWork defines the contract for transactional work and repository access.
//
// GetRepository is part of UnitOfWork so that every repository obtained inside
// Do is bound to the same DB session/transaction; resolving repositories any
// other way would silently break atomicity.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The function receives a
	// UnitOfWork scoped to that transaction; returning an error rolls the
	// whole unit of work back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the current
	// transaction/session.
	AccountRepository() (AccountRepository, error)

	// TransactionRepository returns the transaction repository bound to the
	// current transaction/session.
	TransactionRepository() (TransactionRepository, error)
}
