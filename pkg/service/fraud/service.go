// Package fraud implements the advisory fraud monitor. It inspects recent
// activity after a committed write and raises alerts for observability; it
// never vetoes a transaction.
package fraud

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alert is the advisory record emitted when an account exceeds the configured
// thresholds. It is intended for logging and telemetry, never for blocking.
type Alert struct {
	AccountID uuid.UUID
	Count     int64
	Threshold decimal.Decimal
	Window    time.Duration
	AsOf      time.Time
}

// Service evaluates fraud signals against the ledger store. It is stateless
// and safe for concurrent use.
type Service struct {
	uow       repository.UnitOfWork
	window    time.Duration
	maxCount  int64
	threshold decimal.Decimal
	logger    *slog.Logger
}

// New builds a fraud monitor from config. Nil config falls back to the
// defaults (5 minutes, 3 transactions, 1000.00).
func New(uow repository.UnitOfWork, cfg *config.Fraud, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = &config.Fraud{WindowMinutes: 5, MaxTransactions: 3, AmountThreshold: 1000}
	}
	return &Service{
		uow:       uow,
		window:    cfg.Window(),
		maxCount:  int64(cfg.MaxTransactions),
		threshold: decimal.NewFromFloat(cfg.AmountThreshold),
		logger:    logger.With("service", "fraud"),
	}
}

// Evaluate counts the account's transactions with amount above the threshold
// in the trailing window ending at asOf, and returns an Alert when the count
// reaches the configured maximum. Failures are logged and swallowed so the
// triggering transaction is never affected.
func (s *Service) Evaluate(ctx context.Context, accountID uuid.UUID, asOf time.Time) *Alert {
	var count int64
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		count, err = txRepo.CountLargeSince(ctx, accountID, s.threshold, asOf.Add(-s.window))
		return err
	})
	if err != nil {
		s.logger.Error("fraud evaluation failed", "accountID", accountID, "error", err)
		return nil
	}
	if count < s.maxCount {
		return nil
	}

	alert := &Alert{
		AccountID: accountID,
		Count:     count,
		Threshold: s.threshold,
		Window:    s.window,
		AsOf:      asOf,
	}
	s.logger.Warn("Fraud alert",
		"accountID", alert.AccountID,
		"count", alert.Count,
		"threshold", alert.Threshold,
		"window", alert.Window,
	)
	return alert
}
