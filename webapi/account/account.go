// Package account exposes the balance and history HTTP endpoints.
package account

import (
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the read-only account endpoints.
//
//   - GET /accounts/:id/balance      : current balance
//   - GET /accounts/:id/transactions : history, newest first
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Get("/accounts/:id/balance", GetBalance(accountSvc))
	app.Get("/accounts/:id/transactions", GetTransactions(accountSvc))
}

// GetBalance returns a Fiber handler for the current balance of an account.
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		b, err := accountSvc.GetBalance(c.Context(), accountID)
		if err != nil {
			log.Errorf("Failed to get balance for %s: %v", accountID, err)
			return common.DomainErrorResponseJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved", BalanceResponse{
			AccountID: b.AccountID.String(),
			Balance:   b.Balance,
		})
	}
}

// GetTransactions returns a Fiber handler listing an account's ledger entries
// ordered by occurred_at descending.
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		txs, err := accountSvc.ListTransactions(c.Context(), accountID)
		if err != nil {
			log.Errorf("Failed to list transactions for %s: %v", accountID, err)
			return common.DomainErrorResponseJSON(c, "Failed to list transactions", err)
		}
		out := make([]TransactionDTO, 0, len(txs))
		for _, tx := range txs {
			out = append(out, TransactionDTO{
				TransactionID: tx.ID.String(),
				AccountID:     tx.AccountID.String(),
				Amount:        tx.Amount,
				Kind:          tx.Kind,
				OccurredAt:    tx.OccurredAt,
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", out)
	}
}
