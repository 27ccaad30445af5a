package memory

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

// RevenueRepository stores revenues in the unit of work's Store.
type RevenueRepository struct {
	uow *UnitOfWork
}

var _ portsrepo.RevenueRepository = (*RevenueRepository)(nil)

// Create stages the revenue when a transaction is open, persists it
// immediately otherwise.
func (r *RevenueRepository) Create(ctx context.Context, revenue domain.Revenue) (domain.Revenue, error) {
	snapshot := revenue
	if r.uow.inTx {
		r.uow.stage(func() (int64, error) {
			r.uow.store.putRevenue(snapshot)
			return 1, nil
		})
		return revenue, nil
	}
	r.uow.store.putRevenue(snapshot)
	return revenue, nil
}

// ListBySpecification returns all persisted revenues matching the
// specification, in its sort order. Staged writes are not visible.
func (r *RevenueRepository) ListBySpecification(ctx context.Context, spec specification.Specification) ([]domain.Revenue, error) {
	var out []domain.Revenue
	for _, rev := range r.uow.store.listRevenues() {
		if matches(spec, revenueFieldValue(rev), rev.StartDate, rev.EndDate, rev.Recurrence) {
			out = append(out, rev)
		}
	}
	sortByKeys(out, spec.Sort(), revenueFieldValue)
	return out, nil
}

// GetSingleBySpecification returns the first matching revenue, or
// apperrors.ErrNotFound.
func (r *RevenueRepository) GetSingleBySpecification(ctx context.Context, spec specification.Specification) (*domain.Revenue, error) {
	list, err := r.ListBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}
