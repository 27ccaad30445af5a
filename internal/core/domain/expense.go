package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies what an expense was for.
type ExpenseCategory string

const (
	CategoryFood           ExpenseCategory = "FOOD"
	CategoryHealth         ExpenseCategory = "HEALTH"
	CategoryHousing        ExpenseCategory = "HOUSING"
	CategoryTransportation ExpenseCategory = "TRANSPORTATION"
	CategoryEducation      ExpenseCategory = "EDUCATION"
	CategoryPets           ExpenseCategory = "PETS"
	CategoryClothing       ExpenseCategory = "CLOTHING"
	CategoryLeisure        ExpenseCategory = "LEISURE"
	CategoryTechnology     ExpenseCategory = "TECHNOLOGY"
	CategoryGifts          ExpenseCategory = "GIFTS_AND_CELEBRATIONS"
	CategoryOther          ExpenseCategory = "OTHER"
)

// PaymentType indicates how an expense was paid.
type PaymentType string

const (
	PaymentCash         PaymentType = "CASH"
	PaymentCreditCard   PaymentType = "CREDIT_CARD"
	PaymentDebitCard    PaymentType = "DEBIT_CARD"
	PaymentBankTransfer PaymentType = "BANK_TRANSFER"
	PaymentPix          PaymentType = "PIX"
	PaymentOther        PaymentType = "OTHER"
)

// Payment describes how an expense is paid, optionally split into
// installments. Value object embedded in Expense.
type Payment struct {
	Type             PaymentType     `json:"type"`
	IsInstallment    bool            `json:"isInstallment"`
	InstallmentCount *int            `json:"installmentCount,omitempty"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	Notes            string          `json:"notes,omitempty"`
}

// InstallmentValue returns the value of each installment, or nil when the
// payment is not split.
func (p Payment) InstallmentValue() *decimal.Decimal {
	if p.InstallmentCount == nil || *p.InstallmentCount <= 0 {
		return nil
	}
	v := p.TotalValue.Div(decimal.NewFromInt(int64(*p.InstallmentCount)))
	return &v
}

// Validate checks the installment rules and returns the violated-rule
// messages.
func (p Payment) Validate() []string {
	var errs []string
	if p.TotalValue.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "payment total value must be greater than zero")
	}
	if p.IsInstallment {
		if p.InstallmentCount == nil || *p.InstallmentCount <= 0 {
			errs = append(errs, "installment count must be greater than zero for installment payments")
			return errs
		}
		installment := p.InstallmentValue()
		if installment != nil && installment.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "installment value must be greater than zero for installment payments")
		}
		if installment != nil && !installment.Mul(decimal.NewFromInt(int64(*p.InstallmentCount))).Equal(p.TotalValue) {
			errs = append(errs, "sum of installments must equal the payment total value")
		}
	} else if p.InstallmentCount != nil {
		errs = append(errs, "non-installment payments must not have an installment count")
	}
	return errs
}

// Expense is a financial record describing money going out, possibly
// recurring.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	UserCode    int             `json:"userCode"`
	Description string          `json:"description,omitempty"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Category    ExpenseCategory `json:"category"`
	Recurrence  Recurrence      `json:"recurrence"`
	Payment     Payment         `json:"payment"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}

const maxExpenseDescriptionLen = 255

// Validate checks the expense's business rules and returns the violated-rule
// messages. For non-recurring expenses it also normalizes the end date to
// equal the start date.
func (e *Expense) Validate() []string {
	var errs []string

	if e.Recurrence.IsRecurring {
		if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
			errs = append(errs, "end date cannot be earlier than start date")
		}
	} else {
		end := DateOnly(e.StartDate)
		e.EndDate = &end
	}

	if e.UserCode <= 0 {
		errs = append(errs, "user code must be a positive integer")
	}
	if len(e.Description) > maxExpenseDescriptionLen {
		errs = append(errs, "description must be at most 255 characters")
	}

	errs = append(errs, e.Recurrence.Validate()...)
	errs = append(errs, e.Payment.Validate()...)
	return errs
}
