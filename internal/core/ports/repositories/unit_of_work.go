package repositories

import "context"

// UnitOfWork coordinates one atomic sequence of reads and writes. An
// instance is exclusively owned by a single in-flight request and allows at
// most one open transaction at a time; nested transactions are rejected with
// apperrors.ErrTransactionInProgress.
type UnitOfWork interface {
	// Begin opens a read-committed transaction. Fails when one is already
	// open.
	Begin(ctx context.Context) error

	// Commit flushes all staged writes, then commits. On any failure during
	// either step the transaction is rolled back and the original error is
	// returned. The transaction handle is disposed either way. Returns the
	// number of rows affected by the flushed writes.
	Commit(ctx context.Context) (int64, error)

	// Rollback discards staged writes and the open transaction. Fails with
	// apperrors.ErrNoTransaction when none is open.
	Rollback(ctx context.Context) error

	// Close releases the open transaction, if any, exactly once. Safe to
	// defer alongside explicit Commit/Rollback calls.
	Close(ctx context.Context)

	// Expenses returns the expense repository bound to this unit of work.
	Expenses() ExpenseRepository

	// Revenues returns the revenue repository bound to this unit of work.
	Revenues() RevenueRepository
}

// UnitOfWorkFactory builds a fresh unit of work per request. Instances must
// never be shared across concurrent requests.
type UnitOfWorkFactory interface {
	NewUnitOfWork() UnitOfWork
}
