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

// PgxRevenueRepository persists revenues through its owning unit of work.
type PgxRevenueRepository struct {
	uow *UnitOfWork
}

var _ portsrepo.RevenueRepository = (*PgxRevenueRepository)(nil)

const revenueBaseColumns = "revenue_id, user_code, description, amount, start_date, end_date, type, created_at, created_by, last_updated_at, last_updated_by"
const revenueRecurrenceColumns = "is_recurring, periodicity, max_occurrences"

const insertRevenueSQL = `
	INSERT INTO revenues (
		revenue_id, user_code, description, amount, start_date, end_date, type,
		is_recurring, periodicity, max_occurrences,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

// Create persists a new revenue. Inside an open transaction the insert is
// staged and only flushed at commit.
func (r *PgxRevenueRepository) Create(ctx context.Context, revenue domain.Revenue) (domain.Revenue, error) {
	m := mapping.ToModelRevenue(revenue)
	args := []any{
		m.RevenueID, m.UserCode, m.Description, m.Amount, m.StartDate, m.EndDate, m.Type,
		m.IsRecurring, m.Periodicity, m.MaxOccurrences,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}

	if r.uow.inTransaction() {
		r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
			tag, err := tx.Exec(ctx, insertRevenueSQL, args...)
			if err != nil {
				return 0, apperrors.NewAppError(500, "failed to insert revenue "+m.RevenueID, err)
			}
			return tag.RowsAffected(), nil
		})
		return revenue, nil
	}

	if _, err := r.uow.reader().Exec(ctx, insertRevenueSQL, args...); err != nil {
		return domain.Revenue{}, apperrors.NewAppError(500, "failed to insert revenue "+m.RevenueID, err)
	}
	return revenue, nil
}

// ListBySpecification returns the revenues matching the specification.
func (r *PgxRevenueRepository) ListBySpecification(ctx context.Context, spec specification.Specification) ([]domain.Revenue, error) {
	rows, withRecurrence, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Revenue
	for rows.Next() {
		m, err := scanRevenue(rows, withRecurrence)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan revenue row", err)
		}
		result = append(result, mapping.ToDomainRevenueFromModel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate revenue rows", err)
	}
	if result == nil {
		result = []domain.Revenue{}
	}
	return result, nil
}

// GetSingleBySpecification returns the first matching revenue, or
// apperrors.ErrNotFound.
func (r *PgxRevenueRepository) GetSingleBySpecification(ctx context.Context, spec specification.Specification) (*domain.Revenue, error) {
	rows, withRecurrence, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to query revenue", err)
		}
		return nil, apperrors.ErrNotFound
	}
	m, err := scanRevenue(rows, withRecurrence)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan revenue row", err)
	}
	revenue := mapping.ToDomainRevenueFromModel(m)
	return &revenue, nil
}

func (r *PgxRevenueRepository) query(ctx context.Context, spec specification.Specification) (pgx.Rows, bool, error) {
	withRecurrence := hasInclude(spec, specification.IncludeRecurrence)

	cols := revenueBaseColumns
	if withRecurrence {
		cols = strings.Join([]string{cols, revenueRecurrenceColumns}, ", ")
	}

	sql, args, err := buildQuery("revenues", cols, revenueColumns, spec, r.uow.inTransaction())
	if err != nil {
		return nil, false, err
	}
	rows, err := r.uow.reader().Query(ctx, sql, args...)
	if err != nil {
		return nil, false, apperrors.NewAppError(500, "failed to query revenues", err)
	}
	return rows, withRecurrence, nil
}

func scanRevenue(rows pgx.Rows, withRecurrence bool) (models.Revenue, error) {
	var m models.Revenue
	dest := []any{
		&m.RevenueID, &m.UserCode, &m.Description, &m.Amount, &m.StartDate, &m.EndDate, &m.Type,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	if withRecurrence {
		dest = append(dest, &m.IsRecurring, &m.Periodicity, &m.MaxOccurrences)
	}
	return m, rows.Scan(dest...)
}
