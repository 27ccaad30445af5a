package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/expensescontrol/expenses_control_app/internal/apperrors"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
	"github.com/expensescontrol/expenses_control_app/internal/utils/mapping"
)

// expenseService implements the expense use cases on top of the unit of work.
type expenseService struct {
	uowFactory portsrepo.UnitOfWorkFactory
	validator  portssvc.Validator
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(uowFactory portsrepo.UnitOfWorkFactory, validator portssvc.Validator) portssvc.ExpenseService {
	return &expenseService{uowFactory: uowFactory, validator: validator}
}

var _ portssvc.ExpenseService = (*expenseService)(nil)

// CreateExpense validates the request, persists the expense inside a
// transaction, and rolls back when the domain rejects the tentative write.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.Int("user_code", req.UserCode))
	logger.Debug("Starting the process of creating a new expense")

	response := &dto.CreateExpenseResponse{}

	// Declarative request validation runs before any transaction begins.
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		logger.Warn("Create expense request failed validation", slog.Int("violations", len(msgs)))
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	expense := mapping.ToDomainExpense(req, time.Now().UTC())

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	created, err := uow.Expenses().Create(ctx, expense)
	if err != nil {
		return nil, err
	}

	// Domain invariants are checked after the tentative write; a violation
	// rolls the transaction back so nothing is partially committed.
	if msgs := created.Validate(); len(msgs) > 0 {
		logger.Warn("Failed to validate domain")
		if err := uow.Rollback(ctx); err != nil {
			return nil, err
		}
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	logger.Info("Expense successfully created", slog.String("expense_id", created.ExpenseID))

	response.Succeed()
	response.Result = &dto.CreateExpenseResult{ExpenseID: created.ExpenseID}
	return response, nil
}

// GetExpensesByUser lists a user's expenses, restricted to a reporting
// window when month and year are both given.
func (s *expenseService) GetExpensesByUser(ctx context.Context, req dto.GetExpensesByUserRequest) (*dto.GetExpensesByUserResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.Int("user_code", req.UserCode))

	response := &dto.GetExpensesByUserResponse{}
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	spec := specification.ExpenseByUser(req.UserCode)
	if req.Month != 0 && req.Year != 0 {
		var err error
		spec, err = specification.ExpenseByUserPeriod(req.UserCode, time.Month(req.Month), req.Year)
		if err != nil {
			response.AddBusinessRuleErrors(err.Error())
			return response, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	expenses, err := uow.Expenses().ListBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("Listed expenses for user", slog.Int("count", len(expenses)))

	result := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, dto.FromDomainExpense(e))
	}

	response.Succeed()
	response.Result = result
	return response, nil
}

// GetExpenseByID fetches a single expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, req dto.GetExpenseByIDRequest) (*dto.GetExpenseByIDResponse, error) {
	response := &dto.GetExpenseByIDResponse{}
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	expense, err := uow.Expenses().GetSingleBySpecification(ctx, specification.ExpenseByID(req.ExpenseID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.AddBusinessRuleErrors("expense not found")
			return response, nil
		}
		return nil, err
	}

	projected := dto.FromDomainExpense(*expense)
	response.Succeed()
	response.Result = &projected
	return response, nil
}
