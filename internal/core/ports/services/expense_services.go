package services

import (
	"context"

	"github.com/expensescontrol/expenses_control_app/internal/dto"
)

// ExpenseService defines the expense use cases. Business-rule failures are
// reported inside the response; a non-nil error means something unexpected
// broke and is left to the command failure interceptor.
type ExpenseService interface {
	// CreateExpense validates, persists, and returns the new expense id.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error)

	// GetExpensesByUser lists a user's expenses, optionally restricted to a
	// month/year reporting window.
	GetExpensesByUser(ctx context.Context, req dto.GetExpensesByUserRequest) (*dto.GetExpensesByUserResponse, error)

	// GetExpenseByID fetches a single expense.
	GetExpenseByID(ctx context.Context, req dto.GetExpenseByIDRequest) (*dto.GetExpenseByIDResponse, error)
}

// RevenueService defines the revenue use cases.
type RevenueService interface {
	// CreateRevenue validates, persists, and returns the new revenue id.
	CreateRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*dto.CreateRevenueResponse, error)

	// GetRevenuesByUser lists a user's revenues, optionally restricted to a
	// month/year reporting window.
	GetRevenuesByUser(ctx context.Context, req dto.GetRevenuesByUserRequest) (*dto.GetRevenuesByUserResponse, error)
}

// ReportingService aggregates records active in a reporting period.
type ReportingService interface {
	// MonthlyReport returns the expenses and revenues active in the given
	// month/year together with their totals and final balance.
	MonthlyReport(ctx context.Context, req dto.MonthlyReportRequest) (*dto.MonthlyReportResponse, error)
}
