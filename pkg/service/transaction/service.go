// Package transaction implements the transaction processor: the orchestrator
// that turns an apply-transaction intent into a durable, exactly-once effect
// on an account balance.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/fraud"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the processor's response. For an idempotent replay it reflects the
// originally stored transaction, not the replay's possibly divergent fields;
// BalanceAfter is always read back from the store.
type Result struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Amount        decimal.Decimal
	Kind          account.TransactionKind
	OccurredAt    time.Time
	BalanceAfter  decimal.Decimal
}

// Service orchestrates transaction application. Collaborators are passed
// explicitly; the fraud monitor is optional and advisory.
type Service struct {
	uow    repository.UnitOfWork
	fraud  *fraud.Service
	logger *slog.Logger
}

// New creates a transaction processor.
func New(uow repository.UnitOfWork, fraudSvc *fraud.Service, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		fraud:  fraudSvc,
		logger: logger.With("service", "transaction"),
	}
}

// Apply processes a transaction intent inside one atomic unit of work:
// idempotency check, exclusive account lock, invariant check, relative balance
// delta, ledger insert, balance read-back. A replayed transaction ID returns
// the stored result without mutating anything. After a successful commit the
// fraud monitor runs; its outcome never alters the response.
func (s *Service) Apply(ctx context.Context, cmd commands.ApplyTransaction) (result *Result, err error) {
	logger := s.logger.With(
		"transactionID", cmd.TransactionID,
		"accountID", cmd.AccountID,
		"kind", cmd.Kind,
	)
	defer func() {
		if err != nil {
			logger.Error("Apply failed", "error", err)
		}
	}()

	// Upstream validates; re-check defensively.
	if _, err = account.ParseTransactionKind(string(cmd.Kind)); err != nil {
		return nil, err
	}
	if err = account.ValidateAmount(cmd.Amount); err != nil {
		return nil, err
	}

	result, err = s.applyOnce(ctx, cmd, logger)
	if errors.Is(err, account.ErrTransactionAlreadyExists) {
		// Lost the insert race for this idempotency key. Postgres aborts the
		// unit of work after the constraint violation, so serve the replay
		// from a fresh one.
		logger.Info("duplicate transaction insert, serving idempotent replay")
		result, err = s.replay(ctx, cmd.TransactionID)
	}
	if err != nil {
		return nil, err
	}

	if s.fraud != nil {
		s.fraud.Evaluate(ctx, result.AccountID, time.Now())
	}
	return result, nil
}

func (s *Service) applyOnce(
	ctx context.Context,
	cmd commands.ApplyTransaction,
	logger *slog.Logger,
) (*Result, error) {
	var result *Result
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		// Idempotency check: a replay never mutates state.
		existing, err := txRepo.Get(ctx, cmd.TransactionID)
		if err == nil {
			acct, err := accountRepo.Get(ctx, existing.AccountID)
			if err != nil {
				return err
			}
			logger.Info("idempotent hit, transaction already recorded")
			result = resultFrom(existing, acct.Balance)
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		// Exclusive account access; concurrent writers of the same account
		// serialize here.
		acct, err := accountRepo.GetForUpdate(ctx, cmd.AccountID)
		if errors.Is(err, domain.ErrNotFound) {
			if cmd.Kind != account.KindDeposit {
				return account.ErrAccountNotFound
			}
			if err := accountRepo.Create(ctx, dto.AccountCreate{ID: cmd.AccountID}); err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					// Another deposit created it first; retryable.
					return domain.ErrConflict
				}
				return err
			}
			logger.Info("account created implicitly on first deposit")
			acct, err = accountRepo.GetForUpdate(ctx, cmd.AccountID)
		}
		if err != nil {
			return err
		}

		if cmd.Kind == account.KindWithdraw {
			a := &account.Account{ID: acct.ID, Balance: acct.Balance}
			if err := a.ValidateWithdraw(cmd.Amount); err != nil {
				return err
			}
		}

		// Relative update: the store computes balance + delta, so a lost
		// update is impossible even if the lock discipline is ever relaxed.
		if err := accountRepo.AddBalance(ctx, cmd.AccountID, cmd.Kind.Delta(cmd.Amount)); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, dto.TransactionCreate{
			ID:         cmd.TransactionID,
			AccountID:  cmd.AccountID,
			Amount:     cmd.Amount,
			Kind:       string(cmd.Kind),
			OccurredAt: cmd.OccurredAt,
		}); err != nil {
			return err
		}

		updated, err := accountRepo.Get(ctx, cmd.AccountID)
		if err != nil {
			return err
		}
		result = &Result{
			TransactionID: cmd.TransactionID,
			AccountID:     cmd.AccountID,
			Amount:        cmd.Amount,
			Kind:          cmd.Kind,
			OccurredAt:    cmd.OccurredAt,
			BalanceAfter:  updated.Balance,
		}
		logger.Info("transaction applied", "balanceAfter", result.BalanceAfter)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// replay serves the stable response for an already-recorded transaction ID.
// BalanceAfter is re-read at replay time rather than cached from the original
// commit; under correct locking the two cannot diverge.
func (s *Service) replay(ctx context.Context, transactionID uuid.UUID) (*Result, error) {
	var result *Result
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		existing, err := txRepo.Get(ctx, transactionID)
		if err != nil {
			return err
		}
		acct, err := accountRepo.Get(ctx, existing.AccountID)
		if err != nil {
			return err
		}
		result = resultFrom(existing, acct.Balance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func resultFrom(tx *dto.TransactionRead, balance decimal.Decimal) *Result {
	return &Result{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
		Amount:        tx.Amount,
		Kind:          account.TransactionKind(tx.Kind),
		OccurredAt:    tx.OccurredAt,
		BalanceAfter:  balance,
	}
}
