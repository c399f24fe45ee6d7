// Package dto defines the data transfer objects exchanged between services and
// repositories. Create DTOs carry only writable fields; Read DTOs are
// query-shaped projections of stored rows.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate carries the fields needed to create an account. Balance always
// starts at 0.00; the store maintains the timestamps.
type AccountCreate struct {
	ID uuid.UUID
}

// AccountRead is a read-optimized projection of an account row.
type AccountRead struct {
	ID        uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
