package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

// RecurrenceRequest carries recurrence details on create requests.
type RecurrenceRequest struct {
	IsRecurring    bool   `json:"isRecurring"`
	Periodicity    string `json:"periodicity,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	MaxOccurrences *int   `json:"maxOccurrences,omitempty"`
}

// PaymentRequest carries payment details on expense create requests.
type PaymentRequest struct {
	Type             string          `json:"type" binding:"required,oneof=CASH CREDIT_CARD DEBIT_CARD BANK_TRANSFER PIX OTHER"`
	IsInstallment    bool            `json:"isInstallment"`
	InstallmentCount *int            `json:"installmentCount,omitempty"`
	TotalValue       decimal.Decimal `json:"totalValue" binding:"required"`
	Notes            string          `json:"notes,omitempty"`
}

// CreateExpenseRequest is the command to record a new expense.
type CreateExpenseRequest struct {
	UserCode    int               `json:"userCode" binding:"required,gt=0" validate:"required,gt=0"`
	Description string            `json:"description,omitempty" validate:"max=255"`
	StartDate   time.Time         `json:"startDate" binding:"required" validate:"required"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	Category    string            `json:"category" binding:"required,oneof=FOOD HEALTH HOUSING TRANSPORTATION EDUCATION PETS CLOTHING LEISURE TECHNOLOGY GIFTS_AND_CELEBRATIONS OTHER" validate:"required"`
	Recurrence  RecurrenceRequest `json:"recurrence"`
	Payment     PaymentRequest    `json:"payment" binding:"required"`
	Notes       string            `json:"notes,omitempty"`
}

// CreateExpenseResult is the payload of a successful create.
type CreateExpenseResult struct {
	ExpenseID string `json:"expenseId"`
}

// CreateExpenseResponse is the envelope returned by the create expense use
// case.
type CreateExpenseResponse struct {
	BaseResponse
	Result *CreateExpenseResult `json:"result,omitempty"`
}

// GetExpensesByUserRequest queries a user's expenses, optionally limited to a
// reporting period.
type GetExpensesByUserRequest struct {
	UserCode int `json:"userCode" validate:"required,gt=0"`
	// Month and Year, when both set, restrict the listing to records active
	// in that reporting window.
	Month int `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year  int `json:"year,omitempty" validate:"omitempty,gt=0"`
}

// ExpenseResponse is the outward projection of an expense.
type ExpenseResponse struct {
	ExpenseID        string           `json:"expenseId"`
	UserCode         int              `json:"userCode"`
	Description      string           `json:"description,omitempty"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          *time.Time       `json:"endDate,omitempty"`
	Category         string           `json:"category"`
	IsRecurring      bool             `json:"isRecurring"`
	Periodicity      string           `json:"periodicity,omitempty"`
	MaxOccurrences   *int             `json:"maxOccurrences,omitempty"`
	PaymentType      string           `json:"paymentType"`
	IsInstallment    bool             `json:"isInstallment"`
	InstallmentCount *int             `json:"installmentCount,omitempty"`
	InstallmentValue *decimal.Decimal `json:"installmentValue,omitempty"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	Notes            string           `json:"notes,omitempty"`
}

// GetExpensesByUserResponse is the envelope returned by the listing use case.
type GetExpensesByUserResponse struct {
	BaseResponse
	Result []ExpenseResponse `json:"result,omitempty"`
}

// GetExpenseByIDRequest fetches a single expense.
type GetExpenseByIDRequest struct {
	ExpenseID string `json:"expenseId" validate:"required,uuid4"`
}

// GetExpenseByIDResponse is the envelope returned by the get-by-id use case.
type GetExpenseByIDResponse struct {
	BaseResponse
	Result *ExpenseResponse `json:"result,omitempty"`
}

// FromDomainExpense projects a domain expense into its response shape.
func FromDomainExpense(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		UserCode:         e.UserCode,
		Description:      e.Description,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Category:         string(e.Category),
		IsRecurring:      e.Recurrence.IsRecurring,
		Periodicity:      string(e.Recurrence.Periodicity),
		MaxOccurrences:   e.Recurrence.MaxOccurrences,
		PaymentType:      string(e.Payment.Type),
		IsInstallment:    e.Payment.IsInstallment,
		InstallmentCount: e.Payment.InstallmentCount,
		InstallmentValue: e.Payment.InstallmentValue(),
		TotalValue:       e.Payment.TotalValue,
		Notes:            e.Notes,
	}
}
