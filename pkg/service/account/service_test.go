package account_test

import (
	"context"
	"testing"
	"time"

	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	accountID := uuid.New()
	uow.SeedAccount(accountID, decimal.NewFromInt(300))

	b, err := svc.GetBalance(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, b.AccountID)
	assert.True(t, b.Balance.Equal(decimal.NewFromInt(300)))
}

func TestGetBalance_UnknownAccount(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	_, err := svc.GetBalance(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
}

func TestListTransactions_NewestFirst(t *testing.T) {
	require := require.New(t)
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	accountID := uuid.New()
	uow.SeedAccount(accountID, decimal.NewFromInt(100))

	base := time.Now().Truncate(time.Second)
	ids := make([]uuid.UUID, 3)
	for i := range 3 {
		ids[i] = uuid.New()
		uow.SeedTransaction(dto.TransactionCreate{
			ID:         ids[i],
			AccountID:  accountID,
			Amount:     decimal.NewFromInt(int64(10 * (i + 1))),
			Kind:       string(domainaccount.KindDeposit),
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	txs, err := svc.ListTransactions(context.Background(), accountID)
	require.NoError(err)
	require.Len(txs, 3)
	assert.Equal(t, ids[2], txs[0].ID)
	assert.Equal(t, ids[1], txs[1].ID)
	assert.Equal(t, ids[0], txs[2].ID)
}

func TestListTransactions_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	require := require.New(t)
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	accountID := uuid.New()
	uow.SeedAccount(accountID, decimal.NewFromInt(100))

	occurredAt := time.Now().Truncate(time.Second)
	first, second := uuid.New(), uuid.New()
	for _, id := range []uuid.UUID{first, second} {
		uow.SeedTransaction(dto.TransactionCreate{
			ID:         id,
			AccountID:  accountID,
			Amount:     decimal.NewFromInt(10),
			Kind:       string(domainaccount.KindDeposit),
			OccurredAt: occurredAt,
		})
	}

	txs, err := svc.ListTransactions(context.Background(), accountID)
	require.NoError(err)
	require.Len(txs, 2)
	// Later insertion wins the tie.
	assert.Equal(t, second, txs[0].ID)
	assert.Equal(t, first, txs[1].ID)
}

func TestListTransactions_ExcludesOtherAccounts(t *testing.T) {
	require := require.New(t)
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	accountID, otherID := uuid.New(), uuid.New()
	uow.SeedAccount(accountID, decimal.Zero)
	uow.SeedAccount(otherID, decimal.Zero)
	uow.SeedTransaction(dto.TransactionCreate{
		ID:         uuid.New(),
		AccountID:  otherID,
		Amount:     decimal.NewFromInt(10),
		Kind:       string(domainaccount.KindDeposit),
		OccurredAt: time.Now(),
	})

	txs, err := svc.ListTransactions(context.Background(), accountID)
	require.NoError(err)
	assert.Empty(t, txs)
}

func TestListTransactions_UnknownAccount(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := accountsvc.New(uow, testutils.NewTestLogger())

	_, err := svc.ListTransactions(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
}
