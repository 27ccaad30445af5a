package repositories

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

// ExpenseRepository persists and queries expenses.
type ExpenseRepository interface {
	Repository[domain.Expense]
}

// RevenueRepository persists and queries revenues.
type RevenueRepository interface {
	Repository[domain.Revenue]
}

// CommandFailureRepository persists forensic failure records. Writes go to
// the underlying pool, never to an open business transaction, so a captured
// failure survives the rollback of the operation that produced it.
type CommandFailureRepository interface {
	Save(ctx context.Context, failure domain.CommandFailure) error
}
