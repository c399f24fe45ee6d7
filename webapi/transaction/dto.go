package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the request body for applying a transaction.
// Amount is decoded as a decimal to avoid float rounding drift.
type CreateTransactionRequest struct {
	TransactionID string          `json:"transaction_id" validate:"required,uuid"`
	AccountID     string          `json:"account_id" validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Kind          string          `json:"kind" validate:"required,oneof=deposit withdraw"`
	OccurredAt    time.Time       `json:"occurred_at" validate:"required"`
}

// TransactionResponse is the API representation of an applied transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	OccurredAt    time.Time       `json:"occurred_at"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}
