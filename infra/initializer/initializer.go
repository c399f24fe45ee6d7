// Package initializer bootstraps all application dependencies.
package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/infra"
	infrarepository "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies builds the logger, database connection, schema and
// unit of work used by the services.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("Database ready", "env", cfg.Env)

	deps.Uow = infrarepository.NewUoW(db)
	return deps, nil
}
