package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueType classifies where a revenue came from.
type RevenueType string

const (
	RevenueSalary           RevenueType = "SALARY"
	RevenueFoodAllowance    RevenueType = "FOOD_ALLOWANCE"
	RevenueGroceryAllowance RevenueType = "GROCERY_ALLOWANCE"
	RevenueBonus            RevenueType = "BONUS"
	RevenueTransfer         RevenueType = "TRANSFER"
	RevenueOther            RevenueType = "OTHER"
)

// Revenue is a financial record describing money coming in, possibly
// recurring.
type Revenue struct {
	RevenueID   string          `json:"revenueID"`
	UserCode    int             `json:"userCode"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Type        RevenueType     `json:"type"`
	Recurrence  Recurrence      `json:"recurrence"`
	AuditFields
}

const maxRevenueDescriptionLen = 500

// Validate checks the revenue's business rules and returns the violated-rule
// messages. For non-recurring revenues it also normalizes the end date to
// equal the start date.
func (r *Revenue) Validate() []string {
	var errs []string

	if r.Recurrence.IsRecurring {
		if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
			errs = append(errs, "end date cannot be earlier than start date")
		}
	} else {
		end := DateOnly(r.StartDate)
		r.EndDate = &end
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	if r.UserCode <= 0 {
		errs = append(errs, "user code must be a positive integer")
	}
	if len(r.Description) > maxRevenueDescriptionLen {
		errs = append(errs, "description must be at most 500 characters")
	}

	errs = append(errs, r.Recurrence.Validate()...)
	return errs
}
