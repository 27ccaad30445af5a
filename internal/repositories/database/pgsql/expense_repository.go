package pgsql

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
	"github.com/expensescontrol/expenses_control_app/internal/models"
	"github.com/expensescontrol/expenses_control_app/internal/utils/mapping"
)

// PgxExpenseRepository persists expenses through its owning unit of work.
type PgxExpenseRepository struct {
	uow *UnitOfWork
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseBaseColumns = "expense_id, user_code, description, start_date, end_date, category, notes, created_at, created_by, last_updated_at, last_updated_by"
const expenseRecurrenceColumns = "is_recurring, periodicity, max_occurrences"
const expensePaymentColumns = "payment_type, is_installment, installment_count, total_value, payment_notes"

const insertExpenseSQL = `
	INSERT INTO expenses (
		expense_id, user_code, description, start_date, end_date, category, notes,
		is_recurring, periodicity, max_occurrences,
		payment_type, is_installment, installment_count, total_value, payment_notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

// Create persists a new expense. Inside an open transaction the insert is
// staged and only flushed at commit, so a later rollback leaves no row
// behind.
func (r *PgxExpenseRepository) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	m := mapping.ToModelExpense(expense)
	args := []any{
		m.ExpenseID, m.UserCode, m.Description, m.StartDate, m.EndDate, m.Category, m.Notes,
		m.IsRecurring, m.Periodicity, m.MaxOccurrences,
		m.PaymentType, m.IsInstallment, m.InstallmentCount, m.TotalValue, m.PaymentNotes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}

	if r.uow.inTransaction() {
		r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
			tag, err := tx.Exec(ctx, insertExpenseSQL, args...)
			if err != nil {
				return 0, apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
			}
			return tag.RowsAffected(), nil
		})
		return expense, nil
	}

	if _, err := r.uow.reader().Exec(ctx, insertExpenseSQL, args...); err != nil {
		return domain.Expense{}, apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}
	return expense, nil
}

// ListBySpecification returns the expenses matching the specification.
func (r *PgxExpenseRepository) ListBySpecification(ctx context.Context, spec specification.Specification) ([]domain.Expense, error) {
	rows, withRecurrence, withPayment, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Expense
	for rows.Next() {
		m, err := scanExpense(rows, withRecurrence, withPayment)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		result = append(result, mapping.ToDomainExpenseFromModel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate expense rows", err)
	}
	if result == nil {
		result = []domain.Expense{}
	}
	return result, nil
}

// GetSingleBySpecification returns the first matching expense, or
// apperrors.ErrNotFound.
func (r *PgxExpenseRepository) GetSingleBySpecification(ctx context.Context, spec specification.Specification) (*domain.Expense, error) {
	rows, withRecurrence, withPayment, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to query expense", err)
		}
		return nil, apperrors.ErrNotFound
	}
	m, err := scanExpense(rows, withRecurrence, withPayment)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
	}
	expense := mapping.ToDomainExpenseFromModel(m)
	return &expense, nil
}

func (r *PgxExpenseRepository) query(ctx context.Context, spec specification.Specification) (pgx.Rows, bool, bool, error) {
	withRecurrence := hasInclude(spec, specification.IncludeRecurrence)
	withPayment := hasInclude(spec, specification.IncludePayment)

	cols := expenseBaseColumns
	if withRecurrence {
		cols = strings.Join([]string{cols, expenseRecurrenceColumns}, ", ")
	}
	if withPayment {
		cols = strings.Join([]string{cols, expensePaymentColumns}, ", ")
	}

	sql, args, err := buildQuery("expenses", cols, expenseColumns, spec, r.uow.inTransaction())
	if err != nil {
		return nil, false, false, err
	}
	rows, err := r.uow.reader().Query(ctx, sql, args...)
	if err != nil {
		return nil, false, false, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	return rows, withRecurrence, withPayment, nil
}

func scanExpense(rows pgx.Rows, withRecurrence, withPayment bool) (models.Expense, error) {
	var m models.Expense
	dest := []any{
		&m.ExpenseID, &m.UserCode, &m.Description, &m.StartDate, &m.EndDate, &m.Category, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	if withRecurrence {
		dest = append(dest, &m.IsRecurring, &m.Periodicity, &m.MaxOccurrences)
	}
	if withPayment {
		dest = append(dest, &m.PaymentType, &m.IsInstallment, &m.InstallmentCount, &m.TotalValue, &m.PaymentNotes)
	}
	return m, rows.Scan(dest...)
}
