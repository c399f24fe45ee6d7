// Package account contains the ledger's core entities and their invariants.
package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a withdrawal would drive the
	// balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransactionAmountMustBePositive is returned when a transaction amount
	// is zero or negative.
	ErrTransactionAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrTransactionAlreadyExists is returned when a transaction ID has already
	// been recorded. Callers treat this as an idempotent replay, not a failure.
	ErrTransactionAlreadyExists = errors.New("transaction already exists")
)

// Account is the lock and consistency boundary of the ledger. Its balance is a
// fixed-point decimal (two fractional digits) and is never negative at any
// observable point.
type Account struct {
	ID        uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateAmount checks the shared amount invariant for both kinds.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrTransactionAmountMustBePositive
	}
	return nil
}

// ValidateWithdraw enforces the non-negative balance invariant: a withdrawal
// may take the balance to exactly zero but never below it.
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}
