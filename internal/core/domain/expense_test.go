package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

func intPtr(v int) *int { return &v }

func validExpense() domain.Expense {
	return domain.Expense{
		ExpenseID:   "b5e7a1de-7f2a-4a93-9a51-000000000001",
		UserCode:    7,
		Description: "electricity bill",
		StartDate:   date(2023, time.June, 5),
		Category:    domain.CategoryHousing,
		Recurrence:  domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly},
		Payment: domain.Payment{
			Type:       domain.PaymentPix,
			TotalValue: decimal.NewFromFloat(150.00),
		},
	}
}

func TestExpense_Validate(t *testing.T) {
	t.Run("valid recurring expense", func(t *testing.T) {
		e := validExpense()
		assert.Empty(t, e.Validate())
	})

	t.Run("end date before start date on recurring expense", func(t *testing.T) {
		e := validExpense()
		e.EndDate = datePtr(2023, time.June, 1)
		errs := e.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "end date cannot be earlier than start date")
	})

	t.Run("non-recurring expense gets end date pinned to start date", func(t *testing.T) {
		e := validExpense()
		e.Recurrence = domain.Recurrence{IsRecurring: false}
		e.EndDate = nil

		assert.Empty(t, e.Validate())
		require.NotNil(t, e.EndDate)
		assert.Equal(t, e.StartDate, *e.EndDate)
	})

	t.Run("non-recurring expense with divergent end date is normalized", func(t *testing.T) {
		e := validExpense()
		e.Recurrence = domain.Recurrence{IsRecurring: false}
		e.EndDate = datePtr(2024, time.January, 1)

		assert.Empty(t, e.Validate())
		require.NotNil(t, e.EndDate)
		assert.Equal(t, e.StartDate, *e.EndDate)
	})

	t.Run("user code must be positive", func(t *testing.T) {
		e := validExpense()
		e.UserCode = 0
		errs := e.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "user code")
	})

	t.Run("description length is capped", func(t *testing.T) {
		e := validExpense()
		e.Description = strings.Repeat("x", 256)
		errs := e.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "255")
	})

	t.Run("all violations are reported together", func(t *testing.T) {
		e := validExpense()
		e.UserCode = -1
		e.Recurrence.MaxOccurrences = intPtr(0)
		e.Payment.TotalValue = decimal.Zero
		errs := e.Validate()
		assert.Len(t, errs, 3)
	})
}

func TestRecurrence_Validate(t *testing.T) {
	tests := []struct {
		name     string
		rec      domain.Recurrence
		wantErrs int
	}{
		{
			name:     "non-recurring without cap",
			rec:      domain.Recurrence{IsRecurring: false},
			wantErrs: 0,
		},
		{
			name:     "recurring without cap means indefinite",
			rec:      domain.Recurrence{IsRecurring: true, Periodicity: domain.Weekly},
			wantErrs: 0,
		},
		{
			name:     "recurring with positive cap",
			rec:      domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly, MaxOccurrences: intPtr(12)},
			wantErrs: 0,
		},
		{
			name:     "recurring with zero cap",
			rec:      domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly, MaxOccurrences: intPtr(0)},
			wantErrs: 1,
		},
		{
			name:     "recurring with negative cap",
			rec:      domain.Recurrence{IsRecurring: true, Periodicity: domain.Daily, MaxOccurrences: intPtr(-3)},
			wantErrs: 1,
		},
		{
			name:     "non-recurring must not carry a cap",
			rec:      domain.Recurrence{IsRecurring: false, MaxOccurrences: intPtr(5)},
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.rec.Validate(), tt.wantErrs)
		})
	}
}

func TestPayment_Validate(t *testing.T) {
	t.Run("valid installment payment", func(t *testing.T) {
		p := domain.Payment{
			Type:             domain.PaymentCreditCard,
			IsInstallment:    true,
			InstallmentCount: intPtr(4),
			TotalValue:       decimal.NewFromFloat(100.00),
		}
		assert.Empty(t, p.Validate())
	})

	t.Run("installment payment without a count", func(t *testing.T) {
		p := domain.Payment{
			Type:          domain.PaymentCreditCard,
			IsInstallment: true,
			TotalValue:    decimal.NewFromFloat(100.00),
		}
		errs := p.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "installment count")
	})

	t.Run("non-installment payment with a count", func(t *testing.T) {
		p := domain.Payment{
			Type:             domain.PaymentCash,
			InstallmentCount: intPtr(2),
			TotalValue:       decimal.NewFromFloat(50.00),
		}
		errs := p.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "must not have an installment count")
	})

	t.Run("total value must be positive", func(t *testing.T) {
		p := domain.Payment{Type: domain.PaymentCash, TotalValue: decimal.Zero}
		errs := p.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "greater than zero")
	})
}

func TestPayment_InstallmentValue(t *testing.T) {
	p := domain.Payment{
		Type:             domain.PaymentCreditCard,
		IsInstallment:    true,
		InstallmentCount: intPtr(3),
		TotalValue:       decimal.NewFromFloat(90.00),
	}
	v := p.InstallmentValue()
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.NewFromFloat(30.00)))

	whole := domain.Payment{Type: domain.PaymentCash, TotalValue: decimal.NewFromFloat(90.00)}
	assert.Nil(t, whole.InstallmentValue())
}

func TestRevenue_Validate(t *testing.T) {
	valid := func() domain.Revenue {
		return domain.Revenue{
			RevenueID:  "b5e7a1de-7f2a-4a93-9a51-000000000002",
			UserCode:   7,
			Amount:     decimal.NewFromFloat(5000.00),
			StartDate:  date(2023, time.June, 1),
			Type:       domain.RevenueSalary,
			Recurrence: domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly},
		}
	}

	t.Run("valid recurring revenue", func(t *testing.T) {
		r := valid()
		assert.Empty(t, r.Validate())
	})

	t.Run("amount must be positive", func(t *testing.T) {
		r := valid()
		r.Amount = decimal.NewFromFloat(-1)
		errs := r.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "amount")
	})

	t.Run("non-recurring revenue gets end date pinned to start date", func(t *testing.T) {
		r := valid()
		r.Recurrence = domain.Recurrence{IsRecurring: false}
		assert.Empty(t, r.Validate())
		require.NotNil(t, r.EndDate)
		assert.Equal(t, r.StartDate, *r.EndDate)
	})

	t.Run("description length is capped at 500", func(t *testing.T) {
		r := valid()
		r.Description = strings.Repeat("x", 501)
		errs := r.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "500")
	})
}
