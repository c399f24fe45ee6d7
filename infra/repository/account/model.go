package account

import (
	"time"

	"github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database. Accounts are created
// implicitly by the first deposit and never deleted.
type Account struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;column:account_id"`
	Balance      decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Transactions []transaction.Transaction `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
