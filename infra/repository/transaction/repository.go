// Package transaction implements the ledger-entry repository over GORM.
package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository bound to the given *gorm.DB session.
func New(db *gorm.DB) repo.TransactionRepository {
	return &repository{db: db}
}

// Get implements repository.TransactionRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&tx), nil
}

// Create implements repository.TransactionRepository. The primary key is the
// idempotency key, so a duplicate insert is reported as
// account.ErrTransactionAlreadyExists.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := Transaction{
		ID:         create.ID,
		AccountID:  create.AccountID,
		Amount:     create.Amount,
		Kind:       create.Kind,
		OccurredAt: create.OccurredAt,
	}
	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrTransactionAlreadyExists
		}
		return err
	}
	return nil
}

// ListByAccount implements repository.TransactionRepository. Ordering is
// occurred_at descending with seq as the stable insertion-order tie-break.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("occurred_at DESC, seq DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

// CountLargeSince implements repository.TransactionRepository.
func (r *repository) CountLargeSince(
	ctx context.Context,
	accountID uuid.UUID,
	threshold decimal.Decimal,
	since time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("account_id = ? AND amount > ? AND occurred_at >= ?", accountID, threshold, since).
		Count(&count).Error
	return count, err
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		Amount:     tx.Amount,
		Kind:       tx.Kind,
		OccurredAt: tx.OccurredAt,
		CreatedAt:  tx.CreatedAt,
	}
}
