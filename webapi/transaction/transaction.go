// Package transaction exposes the transaction-processing HTTP endpoints.
package transaction

import (
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	transactionsvc "github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the transaction endpoints.
//
//   - POST /transactions : apply a deposit or withdrawal (idempotent on transaction_id)
func Routes(app *fiber.App, txSvc *transactionsvc.Service) {
	app.Post("/transactions", Create(txSvc))
}

// Create returns a Fiber handler that applies a transaction intent. A replayed
// transaction_id returns the originally stored result with the same status.
func Create(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err // error response already written
		}

		transactionID, err := uuid.Parse(input.TransactionID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transaction ID", "transaction_id must be a valid UUID")
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "account_id must be a valid UUID")
		}
		kind, err := account.ParseTransactionKind(input.Kind)
		if err != nil {
			return common.DomainErrorResponseJSON(c, "Invalid transaction kind", err)
		}

		result, err := txSvc.Apply(c.Context(), commands.ApplyTransaction{
			TransactionID: transactionID,
			AccountID:     accountID,
			Amount:        input.Amount,
			Kind:          kind,
			OccurredAt:    input.OccurredAt,
		})
		if err != nil {
			log.Errorf("Failed to apply transaction %s: %v", transactionID, err)
			return common.DomainErrorResponseJSON(c, "Failed to apply transaction", err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction applied",
			TransactionResponse{
				TransactionID: result.TransactionID.String(),
				AccountID:     result.AccountID.String(),
				Amount:        result.Amount,
				Kind:          string(result.Kind),
				OccurredAt:    result.OccurredAt,
				BalanceAfter:  result.BalanceAfter,
			})
	}
}
