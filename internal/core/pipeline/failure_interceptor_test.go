package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	"github.com/expensescontrol/expenses_control_app/internal/core/pipeline"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/repositories/memory"
)

type failingFailureRepo struct{}

func (failingFailureRepo) Save(ctx context.Context, failure domain.CommandFailure) error {
	return errors.New("failure store unavailable")
}

func TestExecute_SuccessPassesThroughUntouched(t *testing.T) {
	store := memory.NewStore()
	interceptor := pipeline.NewFailureInterceptor(memory.NewCommandFailureRepository(store), false)

	handler := func(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error) {
		res := &dto.CreateExpenseResponse{}
		res.Succeed()
		res.Result = &dto.CreateExpenseResult{ExpenseID: "e-1"}
		return res, nil
	}

	res := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		context.Background(), interceptor, dto.CreateExpenseRequest{UserCode: 7}, handler,
	)

	assert.True(t, res.IsSuccess())
	require.NotNil(t, res.Result)
	assert.Equal(t, "e-1", res.Result.ExpenseID)
	assert.Empty(t, store.Failures())
}

func TestExecute_BusinessRuleFailureIsNotRecorded(t *testing.T) {
	store := memory.NewStore()
	interceptor := pipeline.NewFailureInterceptor(memory.NewCommandFailureRepository(store), false)

	handler := func(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error) {
		res := &dto.CreateExpenseResponse{}
		res.AddBusinessRuleErrors("user code must be a positive integer")
		return res, nil
	}

	res := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		context.Background(), interceptor, dto.CreateExpenseRequest{}, handler,
	)

	assert.False(t, res.IsSuccess())
	assert.Equal(t, dto.BusinessRuleError, res.ErrorType)
	assert.Empty(t, res.TraceID)
	assert.Empty(t, store.Failures())
}

func TestExecute_HandlerErrorIsCapturedOnce(t *testing.T) {
	store := memory.NewStore()
	interceptor := pipeline.NewFailureInterceptor(memory.NewCommandFailureRepository(store), true)

	handler := func(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error) {
		return nil, errors.New("connection refused")
	}

	before := time.Now().UTC()
	res := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		context.Background(), interceptor, dto.CreateExpenseRequest{UserCode: 7, Description: "groceries"}, handler,
	)

	assert.False(t, res.IsSuccess())
	assert.Equal(t, dto.InternalError, res.ErrorType)
	require.NotEmpty(t, res.TraceID)
	// The generic message never carries the underlying detail.
	require.Len(t, res.ErrorMessages, 1)
	assert.NotContains(t, res.ErrorMessages[0], "connection refused")

	failures := store.Failures()
	require.Len(t, failures, 1)
	f := failures[0]
	assert.Equal(t, "CreateExpenseRequest", f.CommandName)
	assert.Equal(t, "connection refused", f.ErrorDetails)
	assert.Equal(t, res.TraceID, f.TraceID)
	assert.NotEmpty(t, f.ID)
	assert.False(t, f.Timestamp.Before(before))
	require.NotNil(t, f.RequestContent)
	assert.Contains(t, *f.RequestContent, "groceries")
}

func TestExecute_PanicIsCapturedAsFailure(t *testing.T) {
	store := memory.NewStore()
	interceptor := pipeline.NewFailureInterceptor(memory.NewCommandFailureRepository(store), false)

	handler := func(ctx context.Context, req dto.MonthlyReportRequest) (*dto.MonthlyReportResponse, error) {
		panic("index out of range")
	}

	res := pipeline.Execute[dto.MonthlyReportRequest, dto.MonthlyReportResponse](
		context.Background(), interceptor, dto.MonthlyReportRequest{UserCode: 7, Month: 6, Year: 2023}, handler,
	)

	assert.False(t, res.IsSuccess())
	assert.Equal(t, dto.InternalError, res.ErrorType)

	failures := store.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "MonthlyReportRequest", failures[0].CommandName)
	assert.Contains(t, failures[0].ErrorDetails, "index out of range")
}

func TestExecute_FailureStoreOutageStillProducesSafeResponse(t *testing.T) {
	interceptor := pipeline.NewFailureInterceptor(failingFailureRepo{}, false)

	handler := func(ctx context.Context, req dto.CreateRevenueRequest) (*dto.CreateRevenueResponse, error) {
		return nil, errors.New("broken")
	}

	res := pipeline.Execute[dto.CreateRevenueRequest, dto.CreateRevenueResponse](
		context.Background(), interceptor, dto.CreateRevenueRequest{}, handler,
	)

	assert.False(t, res.IsSuccess())
	assert.Equal(t, dto.InternalError, res.ErrorType)
	assert.NotEmpty(t, res.TraceID)
}

func TestExecute_EveryFailureGetsADistinctTrace(t *testing.T) {
	store := memory.NewStore()
	interceptor := pipeline.NewFailureInterceptor(memory.NewCommandFailureRepository(store), false)

	handler := func(ctx context.Context, req dto.CreateExpenseRequest) (*dto.CreateExpenseResponse, error) {
		return nil, errors.New("boom")
	}

	first := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		context.Background(), interceptor, dto.CreateExpenseRequest{}, handler,
	)
	second := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		context.Background(), interceptor, dto.CreateExpenseRequest{}, handler,
	)

	assert.NotEqual(t, first.TraceID, second.TraceID)
	assert.Len(t, store.Failures(), 2)
}
