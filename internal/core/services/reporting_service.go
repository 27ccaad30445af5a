package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
)

// reportingService aggregates the records active in a reporting window.
type reportingService struct {
	uowFactory portsrepo.UnitOfWorkFactory
	validator  portssvc.Validator
}

// NewReportingService creates a new ReportingService.
func NewReportingService(uowFactory portsrepo.UnitOfWorkFactory, validator portssvc.Validator) portssvc.ReportingService {
	return &reportingService{uowFactory: uowFactory, validator: validator}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// MonthlyReport lists a user's expenses and revenues active in the month and
// computes the period totals and final balance.
func (s *reportingService) MonthlyReport(ctx context.Context, req dto.MonthlyReportRequest) (*dto.MonthlyReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.Int("user_code", req.UserCode),
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
	)

	response := &dto.MonthlyReportResponse{}
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	expenseSpec, err := specification.ExpenseByUserPeriod(req.UserCode, time.Month(req.Month), req.Year)
	if err != nil {
		response.AddBusinessRuleErrors(err.Error())
		return response, nil
	}
	revenueSpec, err := specification.RevenueByUserPeriod(req.UserCode, time.Month(req.Month), req.Year)
	if err != nil {
		response.AddBusinessRuleErrors(err.Error())
		return response, nil
	}

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	expenses, err := uow.Expenses().ListBySpecification(ctx, expenseSpec)
	if err != nil {
		return nil, err
	}
	revenues, err := uow.Revenues().ListBySpecification(ctx, revenueSpec)
	if err != nil {
		return nil, err
	}

	result := &dto.MonthlyReportResult{
		Month:         req.Month,
		Year:          req.Year,
		Expenses:      make([]dto.ExpenseResponse, 0, len(expenses)),
		Revenues:      make([]dto.RevenueResponse, 0, len(revenues)),
		TotalExpenses: decimal.Zero,
		TotalRevenues: decimal.Zero,
	}
	for _, e := range expenses {
		result.Expenses = append(result.Expenses, dto.FromDomainExpense(e))
		result.TotalExpenses = result.TotalExpenses.Add(e.Payment.TotalValue)
	}
	for _, r := range revenues {
		result.Revenues = append(result.Revenues, dto.FromDomainRevenue(r))
		result.TotalRevenues = result.TotalRevenues.Add(r.Amount)
	}
	result.Balance = result.TotalRevenues.Sub(result.TotalExpenses)

	logger.Info("Monthly report generated",
		slog.Int("expenses", len(expenses)),
		slog.Int("revenues", len(revenues)),
	)

	response.Succeed()
	response.Result = result
	return response, nil
}
