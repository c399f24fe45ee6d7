package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *testutils.MemoryUoW) {
	t.Helper()
	uow := testutils.NewMemoryUoW()
	a := app.New(
		&app.Deps{Uow: uow, Logger: testutils.NewTestLogger()},
		&config.App{
			Env:   "test",
			Fraud: &config.Fraud{WindowMinutes: 5, MaxTransactions: 3, AmountThreshold: 1000},
		},
	)
	return SetupApp(a), uow
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), path)
		assert.Equal(t, "ok", body["status"], path)
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Deposit over HTTP, then read the balance and history back through the
// fully-wired app.
func TestDepositThenReadBack(t *testing.T) {
	require := require.New(t)
	app, _ := newTestApp(t)

	txID, accountID := uuid.New(), uuid.New()
	body := fmt.Sprintf(
		`{"transaction_id":%q,"account_id":%q,"amount":500,"kind":"deposit","occurred_at":%q}`,
		txID, accountID, time.Now().UTC().Format(time.RFC3339),
	)
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(err)
	require.Equal(fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(
		http.MethodGet, "/accounts/"+accountID.String()+"/balance", nil))
	require.NoError(err)
	require.Equal(fiber.StatusOK, resp.StatusCode)

	var balanceEnvelope struct {
		Data struct {
			AccountID string          `json:"account_id"`
			Balance   decimal.Decimal `json:"balance"`
		} `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&balanceEnvelope))
	assert.True(t, balanceEnvelope.Data.Balance.Equal(decimal.NewFromInt(500)))

	resp, err = app.Test(httptest.NewRequest(
		http.MethodGet, "/accounts/"+accountID.String()+"/transactions", nil))
	require.NoError(err)
	require.Equal(fiber.StatusOK, resp.StatusCode)

	var historyEnvelope struct {
		Data []struct {
			TransactionID string `json:"transaction_id"`
		} `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&historyEnvelope))
	require.Len(historyEnvelope.Data, 1)
	assert.Equal(t, txID.String(), historyEnvelope.Data[0].TransactionID)
}
