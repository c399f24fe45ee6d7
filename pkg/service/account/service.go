// Package account provides the read-only balance and history queries.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance pairs an account with its current balance.
type Balance struct {
	AccountID uuid.UUID
	Balance   decimal.Decimal
}

// Service exposes read-only queries against the ledger store.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account query service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger.With("service", "account")}
}

// GetBalance returns the current balance for an account.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (b *Balance, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("GetBalance failed", "accountID", accountID, "error", err)
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := repo.Get(ctx, accountID)
		if errors.Is(err, domain.ErrNotFound) {
			return domainaccount.ErrAccountNotFound
		}
		if err != nil {
			return err
		}
		b = &Balance{AccountID: acct.ID, Balance: acct.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListTransactions returns the account's ledger entries ordered by occurred_at
// descending, ties broken by insertion order.
func (s *Service) ListTransactions(
	ctx context.Context,
	accountID uuid.UUID,
) (txs []*dto.TransactionRead, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("ListTransactions failed", "accountID", accountID, "error", err)
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accountRepo.Get(ctx, accountID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domainaccount.ErrAccountNotFound
			}
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = txRepo.ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}
