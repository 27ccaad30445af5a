package memory

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

// ExpenseRepository stores expenses in the unit of work's Store.
type ExpenseRepository struct {
	uow *UnitOfWork
}

var _ portsrepo.ExpenseRepository = (*ExpenseRepository)(nil)

// Create stages the expense when a transaction is open, persists it
// immediately otherwise. The entity is snapshotted at call time, as the pgsql
// backend renders its insert arguments eagerly.
func (r *ExpenseRepository) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	snapshot := expense
	if r.uow.inTx {
		r.uow.stage(func() (int64, error) {
			r.uow.store.putExpense(snapshot)
			return 1, nil
		})
		return expense, nil
	}
	r.uow.store.putExpense(snapshot)
	return expense, nil
}

// ListBySpecification returns all persisted expenses matching the
// specification, in its sort order. Staged writes are not visible.
func (r *ExpenseRepository) ListBySpecification(ctx context.Context, spec specification.Specification) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, e := range r.uow.store.listExpenses() {
		if matches(spec, expenseFieldValue(e), e.StartDate, e.EndDate, e.Recurrence) {
			out = append(out, e)
		}
	}
	sortByKeys(out, spec.Sort(), expenseFieldValue)
	return out, nil
}

// GetSingleBySpecification returns the first matching expense, or
// apperrors.ErrNotFound.
func (r *ExpenseRepository) GetSingleBySpecification(ctx context.Context, spec specification.Specification) (*domain.Expense, error) {
	list, err := r.ListBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}
