package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/dto"
)

func TestMonthlyReport_AggregatesActiveRecords(t *testing.T) {
	container, _ := newServices()
	ctx := context.Background()

	// Recurring salary active every month since January.
	mustCreateRevenue(t, container.Revenue, dto.CreateRevenueRequest{
		UserCode:   7,
		Amount:     decimal.NewFromFloat(5000),
		StartDate:  date(2023, time.January, 5),
		Type:       "SALARY",
		Recurrence: dto.RecurrenceRequest{IsRecurring: true, Periodicity: "MONTHLY"},
	})
	// Recurring rent, also open-ended.
	mustCreateExpense(t, container.Expense, dto.CreateExpenseRequest{
		UserCode:   7,
		StartDate:  date(2023, time.February, 1),
		Category:   "HOUSING",
		Recurrence: dto.RecurrenceRequest{IsRecurring: true, Periodicity: "MONTHLY"},
		Payment:    cashPayment(1500),
	})
	// One-off groceries in June.
	mustCreateExpense(t, container.Expense, dto.CreateExpenseRequest{
		UserCode:  7,
		StartDate: date(2023, time.June, 10),
		Category:  "FOOD",
		Payment:   cashPayment(350.50),
	})
	// One-off from another month stays out of the June report.
	mustCreateExpense(t, container.Expense, dto.CreateExpenseRequest{
		UserCode:  7,
		StartDate: date(2023, time.May, 10),
		Category:  "LEISURE",
		Payment:   cashPayment(999),
	})

	res, err := container.Reporting.MonthlyReport(ctx, dto.MonthlyReportRequest{UserCode: 7, Month: 6, Year: 2023})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	report := res.Result
	require.NotNil(t, report)
	assert.Equal(t, 6, report.Month)
	assert.Equal(t, 2023, report.Year)
	assert.Len(t, report.Expenses, 2)
	assert.Len(t, report.Revenues, 1)
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromFloat(1850.50)), "got %s", report.TotalExpenses)
	assert.True(t, report.TotalRevenues.Equal(decimal.NewFromFloat(5000)))
	assert.True(t, report.Balance.Equal(decimal.NewFromFloat(3149.50)), "got %s", report.Balance)
}

func TestMonthlyReport_EmptyMonthBalancesToZero(t *testing.T) {
	container, _ := newServices()

	res, err := container.Reporting.MonthlyReport(context.Background(), dto.MonthlyReportRequest{UserCode: 7, Month: 11, Year: 2023})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Empty(t, res.Result.Expenses)
	assert.Empty(t, res.Result.Revenues)
	assert.True(t, res.Result.Balance.IsZero())
}

func TestMonthlyReport_RequiresMonthAndYear(t *testing.T) {
	container, _ := newServices()

	res, err := container.Reporting.MonthlyReport(context.Background(), dto.MonthlyReportRequest{UserCode: 7})
	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, dto.BusinessRuleError, res.ErrorType)
}

func TestMonthlyReport_LeapFebruaryIncludesMonthEndRecords(t *testing.T) {
	container, _ := newServices()

	// Recurrence ending exactly on February 29th of a leap year.
	mustCreateExpense(t, container.Expense, dto.CreateExpenseRequest{
		UserCode:   7,
		StartDate:  date(2024, time.January, 1),
		EndDate:    datePtr(2024, time.February, 29),
		Category:   "EDUCATION",
		Recurrence: dto.RecurrenceRequest{IsRecurring: true, Periodicity: "MONTHLY"},
		Payment:    cashPayment(300),
	})

	res, err := container.Reporting.MonthlyReport(context.Background(), dto.MonthlyReportRequest{UserCode: 7, Month: 2, Year: 2024})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Result.Expenses, 1)

	march, err := container.Reporting.MonthlyReport(context.Background(), dto.MonthlyReportRequest{UserCode: 7, Month: 3, Year: 2024})
	require.NoError(t, err)
	require.True(t, march.IsSuccess())
	assert.Empty(t, march.Result.Expenses)
}
