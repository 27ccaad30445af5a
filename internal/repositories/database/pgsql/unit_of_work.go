package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
)

// pendingChange is a staged write, flushed in order when the transaction
// commits. It reports the rows it affected.
type pendingChange func(ctx context.Context, tx pgx.Tx) (int64, error)

// UnitOfWork manages one read-committed transaction over the expense and
// revenue repositories. Writes inside the transaction are staged and flushed
// at commit; reads go to the open transaction when there is one, the pool
// otherwise. An instance belongs to a single request and must not be shared.
type UnitOfWork struct {
	db      DB
	tx      pgx.Tx
	pending []pendingChange
	closed  bool

	expenses *PgxExpenseRepository
	revenues *PgxRevenueRepository
}

var _ portsrepo.UnitOfWork = (*UnitOfWork)(nil)

func newUnitOfWork(db DB) *UnitOfWork {
	u := &UnitOfWork{db: db}
	u.expenses = &PgxExpenseRepository{uow: u}
	u.revenues = &PgxRevenueRepository{uow: u}
	return u
}

// Begin opens a read-committed transaction. At most one transaction may be
// open per unit of work; a second Begin is a programmer error.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.closed {
		return apperrors.NewAppError(500, "unit of work already disposed", nil)
	}
	if u.tx != nil {
		return apperrors.ErrTransactionInProgress
	}
	tx, err := u.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	u.tx = tx
	return nil
}

// Commit flushes the staged writes, then commits. Any failure during either
// step rolls the transaction back and the original error is what propagates.
// The transaction handle is disposed on every path.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	if u.tx == nil {
		return 0, apperrors.ErrNoTransaction
	}

	var affected int64
	for _, change := range u.pending {
		n, err := change(ctx, u.tx)
		if err != nil {
			u.rollbackQuietly(ctx)
			u.dispose()
			return 0, err
		}
		affected += n
	}

	if err := u.tx.Commit(ctx); err != nil {
		u.rollbackQuietly(ctx)
		u.dispose()
		return 0, apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	u.dispose()
	return affected, nil
}

// Rollback discards the staged writes and the open transaction.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return apperrors.ErrNoTransaction
	}
	err := u.tx.Rollback(context.WithoutCancel(ctx))
	u.dispose()
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// Close releases the open transaction, if any. Safe to call more than once
// and after Commit or Rollback, so callers can defer it unconditionally.
func (u *UnitOfWork) Close(ctx context.Context) {
	if u.closed {
		return
	}
	u.closed = true
	if u.tx != nil {
		u.rollbackQuietly(ctx)
		u.dispose()
	}
}

// Expenses returns the expense repository bound to this unit of work.
func (u *UnitOfWork) Expenses() portsrepo.ExpenseRepository { return u.expenses }

// Revenues returns the revenue repository bound to this unit of work.
func (u *UnitOfWork) Revenues() portsrepo.RevenueRepository { return u.revenues }

// rollbackQuietly attempts a rollback without surfacing its error; used on
// paths where another error is already propagating, and on cancellation,
// where the rollback must still run.
func (u *UnitOfWork) rollbackQuietly(ctx context.Context) {
	_ = u.tx.Rollback(context.WithoutCancel(ctx))
}

func (u *UnitOfWork) dispose() {
	u.tx = nil
	u.pending = nil
}

// inTransaction reports whether a transaction is open.
func (u *UnitOfWork) inTransaction() bool { return u.tx != nil }

// stage queues a write for the commit flush.
func (u *UnitOfWork) stage(change pendingChange) {
	u.pending = append(u.pending, change)
}

// reader returns the open transaction when there is one, the pool otherwise.
func (u *UnitOfWork) reader() querier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// UnitOfWorkFactory builds pool-backed units of work, one per request.
type UnitOfWorkFactory struct {
	db DB
}

var _ portsrepo.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// NewUnitOfWorkFactory creates the factory over a pgx pool.
func NewUnitOfWorkFactory(pool *pgxpool.Pool) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: pool}
}

// NewUnitOfWorkFactoryFromDB creates the factory over any DB; used by tests.
func NewUnitOfWorkFactoryFromDB(db DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// NewUnitOfWork returns a fresh unit of work.
func (f *UnitOfWorkFactory) NewUnitOfWork() portsrepo.UnitOfWork {
	return newUnitOfWork(f.db)
}
