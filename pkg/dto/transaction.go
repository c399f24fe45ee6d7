package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate carries the fields for a new ledger entry. ID is the
// client-supplied idempotency key.
type TransactionCreate struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     decimal.Decimal
	Kind       string
	OccurredAt time.Time
}

// TransactionRead is a read-optimized projection of a transaction row.
type TransactionRead struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     decimal.Decimal
	Kind       string
	OccurredAt time.Time
	CreatedAt  time.Time
}
