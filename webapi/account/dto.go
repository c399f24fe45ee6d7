package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse is the API representation of an account balance.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionDTO is the API representation of a ledger entry in history listings.
type TransactionDTO struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
