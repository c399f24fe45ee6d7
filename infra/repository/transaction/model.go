package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted ledger entry. The primary key is the
// client-supplied idempotency key; rows are never updated or deleted. Seq is a
// monotonically increasing sequence used as the stable tie-breaker when two
// entries share the same occurred_at.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;column:transaction_id"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Kind       string          `gorm:"type:varchar(16);not null"`
	OccurredAt time.Time       `gorm:"type:timestamptz;not null;index"`
	Seq        int64           `gorm:"autoIncrement;uniqueIndex"`
	CreatedAt  time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
