package fraud_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/fraud"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.Fraud{WindowMinutes: 5, MaxTransactions: 3, AmountThreshold: 1000}

func seedDeposit(uow *testutils.MemoryUoW, accountID uuid.UUID, amount int64, occurredAt time.Time) {
	uow.SeedTransaction(dto.TransactionCreate{
		ID:         uuid.New(),
		AccountID:  accountID,
		Amount:     decimal.NewFromInt(amount),
		Kind:       string(account.KindDeposit),
		OccurredAt: occurredAt,
	})
}

func TestEvaluate_AlertsOnThreeLargeTransactions(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := fraud.New(uow, testCfg, testutils.NewTestLogger())

	accountID := uuid.New()
	asOf := time.Now()
	for range 3 {
		seedDeposit(uow, accountID, 1500, asOf.Add(-time.Minute))
	}

	alert := svc.Evaluate(context.Background(), accountID, asOf)
	require.NotNil(t, alert)
	assert.Equal(t, accountID, alert.AccountID)
	assert.Equal(t, int64(3), alert.Count)
	assert.True(t, alert.Threshold.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 5*time.Minute, alert.Window)
}

func TestEvaluate_NoAlertBelowMaxCount(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := fraud.New(uow, testCfg, testutils.NewTestLogger())

	accountID := uuid.New()
	asOf := time.Now()
	for range 2 {
		seedDeposit(uow, accountID, 1500, asOf.Add(-time.Minute))
	}

	assert.Nil(t, svc.Evaluate(context.Background(), accountID, asOf))
}

func TestEvaluate_IgnoresSmallAndStaleTransactions(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := fraud.New(uow, testCfg, testutils.NewTestLogger())

	accountID := uuid.New()
	asOf := time.Now()

	// Two large in-window entries plus noise that must not count: an amount at
	// exactly the threshold, and a large entry outside the window.
	seedDeposit(uow, accountID, 1500, asOf.Add(-time.Minute))
	seedDeposit(uow, accountID, 2000, asOf.Add(-2*time.Minute))
	seedDeposit(uow, accountID, 1000, asOf.Add(-time.Minute))
	seedDeposit(uow, accountID, 5000, asOf.Add(-10*time.Minute))

	assert.Nil(t, svc.Evaluate(context.Background(), accountID, asOf))

	// A third qualifying entry tips it over.
	seedDeposit(uow, accountID, 1500, asOf.Add(-30*time.Second))
	alert := svc.Evaluate(context.Background(), accountID, asOf)
	require.NotNil(t, alert)
	assert.Equal(t, int64(3), alert.Count)
}

func TestEvaluate_DefaultsWhenConfigMissing(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := fraud.New(uow, nil, testutils.NewTestLogger())

	accountID := uuid.New()
	asOf := time.Now()
	for range 3 {
		seedDeposit(uow, accountID, 1500, asOf.Add(-time.Minute))
	}

	require.NotNil(t, svc.Evaluate(context.Background(), accountID, asOf))
}

type failingUoW struct{}

func (failingUoW) Do(context.Context, func(repository.UnitOfWork) error) error {
	return errors.New("store unavailable")
}

func (failingUoW) AccountRepository() (repository.AccountRepository, error) {
	return nil, errors.New("store unavailable")
}

func (failingUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return nil, errors.New("store unavailable")
}

func TestEvaluate_SwallowsStoreErrors(t *testing.T) {
	svc := fraud.New(failingUoW{}, testCfg, testutils.NewTestLogger())
	assert.Nil(t, svc.Evaluate(context.Background(), uuid.New(), time.Now()))
}
