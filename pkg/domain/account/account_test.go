package account_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"positive", decimal.NewFromInt(100), nil},
		{"fractional", decimal.RequireFromString("0.01"), nil},
		{"zero", decimal.Zero, account.ErrTransactionAmountMustBePositive},
		{"negative", decimal.NewFromInt(-5), account.ErrTransactionAmountMustBePositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := account.ValidateAmount(tt.amount)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateWithdraw(t *testing.T) {
	acct := &account.Account{Balance: decimal.NewFromInt(300)}

	t.Run("within balance", func(t *testing.T) {
		assert.NoError(t, acct.ValidateWithdraw(decimal.NewFromInt(100)))
	})

	t.Run("to exactly zero", func(t *testing.T) {
		assert.NoError(t, acct.ValidateWithdraw(decimal.NewFromInt(300)))
	})

	t.Run("overdraw", func(t *testing.T) {
		err := acct.ValidateWithdraw(decimal.RequireFromString("300.01"))
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		err := acct.ValidateWithdraw(decimal.Zero)
		assert.ErrorIs(t, err, account.ErrTransactionAmountMustBePositive)
	})
}

func TestParseTransactionKind(t *testing.T) {
	kind, err := account.ParseTransactionKind("deposit")
	require.NoError(t, err)
	assert.Equal(t, account.KindDeposit, kind)

	kind, err = account.ParseTransactionKind("withdraw")
	require.NoError(t, err)
	assert.Equal(t, account.KindWithdraw, kind)

	for _, s := range []string{"", "transfer", "DEPOSIT", "withdrawal"} {
		_, err := account.ParseTransactionKind(s)
		assert.ErrorIs(t, err, account.ErrInvalidTransactionKind, "input %q", s)
	}
}

func TestTransactionKindDelta(t *testing.T) {
	amount := decimal.NewFromInt(100)
	assert.True(t, account.KindDeposit.Delta(amount).Equal(amount))
	assert.True(t, account.KindWithdraw.Delta(amount).Equal(amount.Neg()))
}
