package account

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransactionKind is returned for any kind other than deposit or withdraw.
var ErrInvalidTransactionKind = errors.New("invalid transaction kind")

// TransactionKind is the closed set of ledger entry kinds.
type TransactionKind string

const (
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
)

// ParseTransactionKind rejects anything outside the two known kinds before it
// can reach the processor.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdraw:
		return KindWithdraw, nil
	default:
		return "", ErrInvalidTransactionKind
	}
}

// Delta is the signed balance effect of a transaction of this kind.
func (k TransactionKind) Delta(amount decimal.Decimal) decimal.Decimal {
	if k == KindWithdraw {
		return amount.Neg()
	}
	return amount
}
