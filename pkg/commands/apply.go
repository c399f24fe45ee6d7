// Package commands contains command DTOs for service and handler orchestration.
package commands

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplyTransaction is the intent handed to the transaction processor
// (command pattern). TransactionID is the idempotency key.
type ApplyTransaction struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Amount        decimal.Decimal
	Kind          account.TransactionKind
	OccurredAt    time.Time
}
