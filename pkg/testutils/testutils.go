// Package testutils provides an in-memory UnitOfWork for service and handler
// tests. The store serializes units of work behind one mutex and restores a
// snapshot on error, mirroring the commit/rollback semantics of the real
// GORM-backed unit of work.
package testutils

import (
	"context"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTestLogger returns a logger that discards all output.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type txRow struct {
	dto.TransactionRead
	seq int
}

// MemoryUoW is an in-memory repository.UnitOfWork. Whole-store locking in Do
// stands in for the per-account row lock: concurrent units of work are
// strictly serialized, which is stronger than, and compatible with, the
// production guarantee.
type MemoryUoW struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]dto.AccountRead
	txs      map[uuid.UUID]txRow
	nextSeq  int
}

// NewMemoryUoW creates an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{
		accounts: make(map[uuid.UUID]dto.AccountRead),
		txs:      make(map[uuid.UUID]txRow),
	}
}

// Do implements repository.UnitOfWork. On error the pre-call snapshot is
// restored so no partial effect survives, like a rolled-back transaction.
func (m *MemoryUoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	accountsSnap := maps.Clone(m.accounts)
	txsSnap := maps.Clone(m.txs)
	seqSnap := m.nextSeq

	if err := fn(m); err != nil {
		m.accounts = accountsSnap
		m.txs = txsSnap
		m.nextSeq = seqSnap
		return err
	}
	return nil
}

// AccountRepository implements repository.UnitOfWork.
func (m *MemoryUoW) AccountRepository() (repository.AccountRepository, error) {
	return &memoryAccountRepo{store: m}, nil
}

// TransactionRepository implements repository.UnitOfWork.
func (m *MemoryUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &memoryTransactionRepo{store: m}, nil
}

// SeedAccount inserts an account with the given balance, bypassing the
// processor. For test setup only.
func (m *MemoryUoW) SeedAccount(id uuid.UUID, balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.accounts[id] = dto.AccountRead{ID: id, Balance: balance, CreatedAt: now, UpdatedAt: now}
}

// SeedTransaction inserts a ledger entry, bypassing the processor. For test
// setup only.
func (m *MemoryUoW) SeedTransaction(create dto.TransactionCreate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertTx(create)
}

// TransactionCount reports the number of stored ledger entries.
func (m *MemoryUoW) TransactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txs)
}

// AccountCount reports the number of stored accounts.
func (m *MemoryUoW) AccountCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

func (m *MemoryUoW) insertTx(create dto.TransactionCreate) {
	m.nextSeq++
	m.txs[create.ID] = txRow{
		TransactionRead: dto.TransactionRead{
			ID:         create.ID,
			AccountID:  create.AccountID,
			Amount:     create.Amount,
			Kind:       create.Kind,
			OccurredAt: create.OccurredAt,
			CreatedAt:  time.Now(),
		},
		seq: m.nextSeq,
	}
}

type memoryAccountRepo struct {
	store *MemoryUoW
}

func (r *memoryAccountRepo) Get(_ context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	acct, ok := r.store.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &acct, nil
}

// GetForUpdate behaves like Get; Do's store-wide mutex already serializes writers.
func (r *memoryAccountRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	return r.Get(ctx, id)
}

func (r *memoryAccountRepo) Create(_ context.Context, create dto.AccountCreate) error {
	if _, ok := r.store.accounts[create.ID]; ok {
		return domain.ErrAlreadyExists
	}
	now := time.Now()
	r.store.accounts[create.ID] = dto.AccountRead{
		ID:        create.ID,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (r *memoryAccountRepo) AddBalance(_ context.Context, id uuid.UUID, delta decimal.Decimal) error {
	acct, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	acct.Balance = acct.Balance.Add(delta)
	acct.UpdatedAt = time.Now()
	r.store.accounts[id] = acct
	return nil
}

type memoryTransactionRepo struct {
	store *MemoryUoW
}

func (r *memoryTransactionRepo) Get(_ context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	row, ok := r.store.txs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	tx := row.TransactionRead
	return &tx, nil
}

func (r *memoryTransactionRepo) Create(_ context.Context, create dto.TransactionCreate) error {
	if _, ok := r.store.txs[create.ID]; ok {
		return account.ErrTransactionAlreadyExists
	}
	r.store.insertTx(create)
	return nil
}

func (r *memoryTransactionRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	rows := make([]txRow, 0)
	for _, row := range r.store.txs {
		if row.AccountID == accountID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OccurredAt.Equal(rows[j].OccurredAt) {
			return rows[i].seq > rows[j].seq
		}
		return rows[i].OccurredAt.After(rows[j].OccurredAt)
	})
	result := make([]*dto.TransactionRead, 0, len(rows))
	for _, row := range rows {
		tx := row.TransactionRead
		result = append(result, &tx)
	}
	return result, nil
}

func (r *memoryTransactionRepo) CountLargeSince(
	_ context.Context,
	accountID uuid.UUID,
	threshold decimal.Decimal,
	since time.Time,
) (int64, error) {
	var count int64
	for _, row := range r.store.txs {
		if row.AccountID == accountID &&
			row.Amount.GreaterThan(threshold) &&
			!row.OccurredAt.Before(since) {
			count++
		}
	}
	return count, nil
}
