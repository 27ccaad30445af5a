package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
	"github.com/expensescontrol/expenses_control_app/internal/repositories/memory"
)

func someExpense(id string, userCode int) domain.Expense {
	return domain.Expense{
		ExpenseID: id,
		UserCode:  userCode,
		StartDate: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		Category:  domain.CategoryFood,
		Payment: domain.Payment{
			Type:       domain.PaymentCash,
			TotalValue: decimal.NewFromFloat(10),
		},
	}
}

func TestMemoryUnitOfWork_StagedWriteVisibleOnlyAfterCommit(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	_, err := uow.Expenses().Create(ctx, someExpense("e-1", 7))
	require.NoError(t, err)
	assert.Equal(t, 0, store.ExpenseCount())

	affected, err := uow.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 1, store.ExpenseCount())
}

func TestMemoryUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	_, err := uow.Expenses().Create(ctx, someExpense("e-1", 7))
	require.NoError(t, err)

	require.NoError(t, uow.Rollback(ctx))
	assert.Equal(t, 0, store.ExpenseCount())
}

func TestMemoryUnitOfWork_StateMachine(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), apperrors.ErrTransactionInProgress)

	require.NoError(t, uow.Rollback(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), apperrors.ErrNoTransaction)

	_, err := uow.Commit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoTransaction)

	uow.Close(ctx)
	assert.Error(t, uow.Begin(ctx))
}

func TestMemoryRepository_SpecificationFilteringAndOrdering(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()
	ctx := context.Background()

	first := someExpense("e-1", 7)
	first.Category = domain.CategoryHousing
	first.Payment.TotalValue = decimal.NewFromFloat(800)
	second := someExpense("e-2", 7)
	second.Payment.TotalValue = decimal.NewFromFloat(90)
	third := someExpense("e-3", 7)
	third.Payment.TotalValue = decimal.NewFromFloat(30)
	other := someExpense("e-4", 8)

	for _, e := range []domain.Expense{first, second, third, other} {
		_, err := uow.Expenses().Create(ctx, e)
		require.NoError(t, err)
	}

	list, err := uow.Expenses().ListBySpecification(ctx, specification.ExpenseByUser(7))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "e-3", list[0].ExpenseID)
	assert.Equal(t, "e-2", list[1].ExpenseID)
	assert.Equal(t, "e-1", list[2].ExpenseID)
}

func TestMemoryRepository_PeriodPredicateUsesTheDomainRule(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()
	ctx := context.Background()

	recurring := someExpense("e-1", 7)
	recurring.StartDate = time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	recurring.Recurrence = domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly}

	oneOff := someExpense("e-2", 7)
	oneOff.StartDate = time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC)

	for _, e := range []domain.Expense{recurring, oneOff} {
		_, err := uow.Expenses().Create(ctx, e)
		require.NoError(t, err)
	}

	spec, err := specification.ExpenseByUserPeriod(7, time.June, 2023)
	require.NoError(t, err)
	list, err := uow.Expenses().ListBySpecification(ctx, spec)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "e-1", list[0].ExpenseID)
}

func TestMemoryRepository_GetSingleNotFound(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).NewUnitOfWork()

	_, err := uow.Expenses().GetSingleBySpecification(context.Background(), specification.ExpenseByID("missing"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
