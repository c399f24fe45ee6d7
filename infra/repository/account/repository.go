// Package account implements the account repository over GORM.
package account

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given *gorm.DB session.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

// Get implements repository.AccountRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "account_id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return mapModelToDTO(&acct), nil
}

// GetForUpdate implements repository.AccountRepository. The SELECT ... FOR
// UPDATE lock is held until the surrounding unit of work ends.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "account_id = ?", id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return mapModelToDTO(&acct), nil
}

// Create implements repository.AccountRepository. Balance starts at 0.00.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{ID: create.ID, Balance: decimal.Zero}
	return mapError(r.db.WithContext(ctx).Create(&acct).Error)
}

// AddBalance implements repository.AccountRepository. The delta is applied
// relative to the stored value so concurrent writers cannot lose updates.
func (r *repository) AddBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	default:
		return err
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		Balance:   acct.Balance,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}
