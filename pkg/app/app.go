// Package app wires services from their dependencies with explicit
// constructors; there is no ambient container.
package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	fraudsvc "github.com/amirasaad/ledger/pkg/service/fraud"
	transactionsvc "github.com/amirasaad/ledger/pkg/service/transaction"
)

// Deps contains the infrastructure dependencies the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the wired services.
type App struct {
	Deps               *Deps
	Config             *config.App
	TransactionService *transactionsvc.Service
	AccountService     *accountsvc.Service
	FraudService       *fraudsvc.Service
}

// New wires the fraud monitor, transaction processor and account queries.
func New(deps *Deps, cfg *config.App) *App {
	fraudService := fraudsvc.New(deps.Uow, cfg.Fraud, deps.Logger)
	return &App{
		Deps:               deps,
		Config:             cfg,
		FraudService:       fraudService,
		TransactionService: transactionsvc.New(deps.Uow, fraudService, deps.Logger),
		AccountService:     accountsvc.New(deps.Uow, deps.Logger),
	}
}
