package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/core/specification"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
	"github.com/expensescontrol/expenses_control_app/internal/utils/mapping"
)

// revenueService implements the revenue use cases on top of the unit of work.
type revenueService struct {
	uowFactory portsrepo.UnitOfWorkFactory
	validator  portssvc.Validator
}

// NewRevenueService creates a new RevenueService.
func NewRevenueService(uowFactory portsrepo.UnitOfWorkFactory, validator portssvc.Validator) portssvc.RevenueService {
	return &revenueService{uowFactory: uowFactory, validator: validator}
}

var _ portssvc.RevenueService = (*revenueService)(nil)

// CreateRevenue validates the request, persists the revenue inside a
// transaction, and rolls back when the domain rejects the tentative write.
func (s *revenueService) CreateRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*dto.CreateRevenueResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.Int("user_code", req.UserCode))
	logger.Debug("Starting the process of creating a new revenue")

	response := &dto.CreateRevenueResponse{}
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		logger.Warn("Create revenue request failed validation", slog.Int("violations", len(msgs)))
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	revenue := mapping.ToDomainRevenue(req, time.Now().UTC())

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	created, err := uow.Revenues().Create(ctx, revenue)
	if err != nil {
		return nil, err
	}

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
	logger.Info("Revenue successfully created", slog.String("revenue_id", created.RevenueID))

	response.Succeed()
	response.Result = &dto.CreateRevenueResult{RevenueID: created.RevenueID}
	return response, nil
}

// GetRevenuesByUser lists a user's revenues, restricted to a reporting
// window when month and year are both given.
func (s *revenueService) GetRevenuesByUser(ctx context.Context, req dto.GetRevenuesByUserRequest) (*dto.GetRevenuesByUserResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.Int("user_code", req.UserCode))

	response := &dto.GetRevenuesByUserResponse{}
	if msgs := s.validator.Validate(req); len(msgs) > 0 {
		response.AddBusinessRuleErrors(msgs...)
		return response, nil
	}

	spec := specification.RevenueByUser(req.UserCode)
	if req.Month != 0 && req.Year != 0 {
		var err error
		spec, err = specification.RevenueByUserPeriod(req.UserCode, time.Month(req.Month), req.Year)
		if err != nil {
			response.AddBusinessRuleErrors(err.Error())
			return response, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork()
	defer uow.Close(ctx)

	revenues, err := uow.Revenues().ListBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("Listed revenues for user", slog.Int("count", len(revenues)))

	result := make([]dto.RevenueResponse, 0, len(revenues))
	for _, r := range revenues {
		result = append(result, dto.FromDomainRevenue(r))
	}

	response.Succeed()
	response.Result = result
	return response, nil
}
