package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
)

func TestBuildQuery_UserFilterAndOrdering(t *testing.T) {
	spec := specification.ExpenseByUser(42)

	sql, args, err := buildQuery("expenses", "*", expenseColumns, spec, false)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM expenses WHERE user_code = $1 ORDER BY category ASC, total_value ASC", sql)
	assert.Equal(t, []any{42}, args)
}

func TestBuildQuery_PeriodPredicate(t *testing.T) {
	w, err := domain.MonthWindow(time.February, 2024)
	require.NoError(t, err)

	spec := specification.New(true).
		Where(specification.FieldUserCode, specification.OpEqual, 7).
		ActiveInPeriod(w)

	sql, args, err := buildQuery("expenses", "*", expenseColumns, spec, false)
	require.NoError(t, err)

	assert.Contains(t, sql, "user_code = $1")
	assert.Contains(t, sql,
		"((NOT is_recurring AND start_date >= $2 AND start_date <= $3) OR "+
			"(is_recurring AND start_date <= $3 AND (end_date IS NULL OR end_date >= $2)))")
	require.Len(t, args, 3)
	assert.Equal(t, 7, args[0])
	assert.Equal(t, w.Start, args[1])
	assert.Equal(t, w.End, args[2])
}

func TestBuildQuery_RowLocking(t *testing.T) {
	writable := specification.New(false).Where(specification.FieldID, specification.OpEqual, "x")

	sql, _, err := buildQuery("expenses", "*", expenseColumns, writable, true)
	require.NoError(t, err)
	assert.Contains(t, sql, " FOR UPDATE")

	// Outside a transaction there is nothing to lock against.
	sql, _, err = buildQuery("expenses", "*", expenseColumns, writable, false)
	require.NoError(t, err)
	assert.NotContains(t, sql, "FOR UPDATE")

	// Read-only specifications never lock, transaction or not.
	readOnly := specification.New(true).Where(specification.FieldID, specification.OpEqual, "x")
	sql, _, err = buildQuery("expenses", "*", expenseColumns, readOnly, true)
	require.NoError(t, err)
	assert.NotContains(t, sql, "FOR UPDATE")
}

func TestBuildQuery_RangeOperators(t *testing.T) {
	spec := specification.New(true).
		Where(specification.FieldStartDate, specification.OpGreaterOrEqual, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)).
		Where(specification.FieldStartDate, specification.OpLessOrEqual, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))

	sql, args, err := buildQuery("revenues", "*", revenueColumns, spec, false)
	require.NoError(t, err)
	assert.Contains(t, sql, "start_date >= $1 AND start_date <= $2")
	assert.Len(t, args, 2)
}

func TestBuildQuery_RejectsUnmappedField(t *testing.T) {
	// total_value belongs to expenses, not revenues.
	spec := specification.New(true).Where(specification.FieldTotalValue, specification.OpEqual, 10)
	_, _, err := buildQuery("revenues", "*", revenueColumns, spec, false)
	assert.Error(t, err)

	sorted := specification.New(true).OrderBy(specification.FieldAmount, specification.Ascending)
	_, _, err = buildQuery("expenses", "*", expenseColumns, sorted, false)
	assert.Error(t, err)
}

func TestHasInclude(t *testing.T) {
	spec := specification.New(true).Including(specification.IncludeRecurrence)
	assert.True(t, hasInclude(spec, specification.IncludeRecurrence))
	assert.False(t, hasInclude(spec, specification.IncludePayment))
}
