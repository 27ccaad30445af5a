package memory

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
)

// pendingChange is a staged write, flushed in order when the transaction
// commits. It reports the rows it affected.
type pendingChange func() (int64, error)

// UnitOfWork mirrors the transactional contract of the pgsql backend over a
// Store. Writes inside an open transaction are staged and only become visible
// to other readers after Commit flushes them; Rollback and Close discard them.
type UnitOfWork struct {
	store   *Store
	inTx    bool
	closed  bool
	pending []pendingChange

	expenses *ExpenseRepository
	revenues *RevenueRepository
}

var _ portsrepo.UnitOfWork = (*UnitOfWork)(nil)

func newUnitOfWork(store *Store) *UnitOfWork {
	u := &UnitOfWork{store: store}
	u.expenses = &ExpenseRepository{uow: u}
	u.revenues = &RevenueRepository{uow: u}
	return u
}

// Begin opens a transaction. At most one may be open per unit of work.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.closed {
		return apperrors.NewAppError(500, "unit of work already disposed", nil)
	}
	if u.inTx {
		return apperrors.ErrTransactionInProgress
	}
	u.inTx = true
	return nil
}

// Commit flushes the staged writes in order. A flush failure discards the
// remaining writes and propagates the original error.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	if !u.inTx {
		return 0, apperrors.ErrNoTransaction
	}

	var affected int64
	for _, change := range u.pending {
		n, err := change()
		if err != nil {
			u.dispose()
			return 0, err
		}
		affected += n
	}
	u.dispose()
	return affected, nil
}

// Rollback discards the staged writes and the open transaction.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if !u.inTx {
		return apperrors.ErrNoTransaction
	}
	u.dispose()
	return nil
}

// Close releases the open transaction, if any. Safe to call more than once.
func (u *UnitOfWork) Close(ctx context.Context) {
	if u.closed {
		return
	}
	u.closed = true
	if u.inTx {
		u.dispose()
	}
}

// Expenses returns the expense repository bound to this unit of work.
func (u *UnitOfWork) Expenses() portsrepo.ExpenseRepository { return u.expenses }

// Revenues returns the revenue repository bound to this unit of work.
func (u *UnitOfWork) Revenues() portsrepo.RevenueRepository { return u.revenues }

func (u *UnitOfWork) dispose() {
	u.inTx = false
	u.pending = nil
}

func (u *UnitOfWork) stage(change pendingChange) {
	u.pending = append(u.pending, change)
}

// UnitOfWorkFactory builds store-backed units of work, one per request.
type UnitOfWorkFactory struct {
	store *Store
}

var _ portsrepo.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// NewUnitOfWorkFactory creates the factory over a store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// NewUnitOfWork returns a fresh unit of work.
func (f *UnitOfWorkFactory) NewUnitOfWork() portsrepo.UnitOfWork {
	return newUnitOfWork(f.store)
}
