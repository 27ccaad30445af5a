package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

// CreateRevenueRequest is the command to record a new revenue.
type CreateRevenueRequest struct {
	UserCode    int               `json:"userCode" binding:"required,gt=0" validate:"required,gt=0"`
	Description string            `json:"description,omitempty" validate:"max=500"`
	Amount      decimal.Decimal   `json:"amount" binding:"required" validate:"required"`
	StartDate   time.Time         `json:"startDate" binding:"required" validate:"required"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	Type        string            `json:"type" binding:"required,oneof=SALARY FOOD_ALLOWANCE GROCERY_ALLOWANCE BONUS TRANSFER OTHER" validate:"required"`
	Recurrence  RecurrenceRequest `json:"recurrence"`
}

// CreateRevenueResult is the payload of a successful create.
type CreateRevenueResult struct {
	RevenueID string `json:"revenueId"`
}

// CreateRevenueResponse is the envelope returned by the create revenue use
// case.
type CreateRevenueResponse struct {
	BaseResponse
	Result *CreateRevenueResult `json:"result,omitempty"`
}

// GetRevenuesByUserRequest queries a user's revenues, optionally limited to a
// reporting period.
type GetRevenuesByUserRequest struct {
	UserCode int `json:"userCode" validate:"required,gt=0"`
	Month    int `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year     int `json:"year,omitempty" validate:"omitempty,gt=0"`
}

// RevenueResponse is the outward projection of a revenue.
type RevenueResponse struct {
	RevenueID      string          `json:"revenueId"`
	UserCode       int             `json:"userCode"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	Type           string          `json:"type"`
	IsRecurring    bool            `json:"isRecurring"`
	Periodicity    string          `json:"periodicity,omitempty"`
	MaxOccurrences *int            `json:"maxOccurrences,omitempty"`
}

// GetRevenuesByUserResponse is the envelope returned by the listing use case.
type GetRevenuesByUserResponse struct {
	BaseResponse
	Result []RevenueResponse `json:"result,omitempty"`
}

// FromDomainRevenue projects a domain revenue into its response shape.
func FromDomainRevenue(r domain.Revenue) RevenueResponse {
	return RevenueResponse{
		RevenueID:      r.RevenueID,
		UserCode:       r.UserCode,
		Description:    r.Description,
		Amount:         r.Amount,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Type:           string(r.Type),
		IsRecurring:    r.Recurrence.IsRecurring,
		Periodicity:    string(r.Recurrence.Periodicity),
		MaxOccurrences: r.Recurrence.MaxOccurrences,
	}
}
