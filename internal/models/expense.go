package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Expense is the persistence shape of an expense row. Recurrence and payment
// value objects are flattened into columns; dates are calendar dates, not
// timestamps, and money is decimal(18,2).
type Expense struct {
	ExpenseID        string          `json:"expenseID"`
	UserCode         int             `json:"userCode"`
	Description      string          `json:"description"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          *time.Time      `json:"endDate"`
	Category         string          `json:"category"`
	IsRecurring      bool            `json:"isRecurring"`
	Periodicity      *string         `json:"periodicity"`
	MaxOccurrences   *int            `json:"maxOccurrences"`
	PaymentType      string          `json:"paymentType"`
	IsInstallment    bool            `json:"isInstallment"`
	InstallmentCount *int            `json:"installmentCount"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	PaymentNotes     *string         `json:"paymentNotes"`
	Notes            *string         `json:"notes"`
	AuditFields
}

// Revenue is the persistence shape of a revenue row.
type Revenue struct {
	RevenueID      string          `json:"revenueID"`
	UserCode       int             `json:"userCode"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	Type           string          `json:"type"`
	IsRecurring    bool            `json:"isRecurring"`
	Periodicity    *string         `json:"periodicity"`
	MaxOccurrences *int            `json:"maxOccurrences"`
	AuditFields
}

// CommandFailure is the persistence shape of a command failure row. The
// request snapshot is truncated to the column width by the writer.
type CommandFailure struct {
	ID             string    `json:"id"`
	CommandName    string    `json:"commandName"`
	ErrorDetails   string    `json:"errorDetails"`
	Timestamp      time.Time `json:"timestamp"`
	RequestContent *string   `json:"requestContent"`
	TraceID        string    `json:"traceID"`
}
