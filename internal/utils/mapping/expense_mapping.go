package mapping

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/models"
)

// ToDomainExpense builds a new domain Expense from a create request. Dates
// are normalized to calendar days and non-recurring records get their end
// date pinned to the start date up front, so the staged insert already
// carries the normalized values.
func ToDomainExpense(req dto.CreateExpenseRequest, now time.Time) domain.Expense {
	e := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserCode:    req.UserCode,
		Description: req.Description,
		StartDate:   domain.DateOnly(req.StartDate),
		Category:    domain.ExpenseCategory(req.Category),
		Recurrence: domain.Recurrence{
			IsRecurring:    req.Recurrence.IsRecurring,
			Periodicity:    domain.RecurrencePeriodicity(req.Recurrence.Periodicity),
			MaxOccurrences: req.Recurrence.MaxOccurrences,
		},
		Payment: domain.Payment{
			Type:             domain.PaymentType(req.Payment.Type),
			IsInstallment:    req.Payment.IsInstallment,
			InstallmentCount: req.Payment.InstallmentCount,
			TotalValue:       req.Payment.TotalValue,
			Notes:            req.Payment.Notes,
		},
		Notes: req.Notes,
	}
	if req.EndDate != nil {
		end := domain.DateOnly(*req.EndDate)
		e.EndDate = &end
	}
	if !e.Recurrence.IsRecurring {
		end := e.StartDate
		e.EndDate = &end
	}
	e.Touch(strconv.Itoa(req.UserCode), now)
	return e
}

// ToDomainRevenue builds a new domain Revenue from a create request, with
// the same date normalization as expenses.
func ToDomainRevenue(req dto.CreateRevenueRequest, now time.Time) domain.Revenue {
	r := domain.Revenue{
		RevenueID:   uuid.NewString(),
		UserCode:    req.UserCode,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   domain.DateOnly(req.StartDate),
		Type:        domain.RevenueType(req.Type),
		Recurrence: domain.Recurrence{
			IsRecurring:    req.Recurrence.IsRecurring,
			Periodicity:    domain.RecurrencePeriodicity(req.Recurrence.Periodicity),
			MaxOccurrences: req.Recurrence.MaxOccurrences,
		},
	}
	if req.EndDate != nil {
		end := domain.DateOnly(*req.EndDate)
		r.EndDate = &end
	}
	if !r.Recurrence.IsRecurring {
		end := r.StartDate
		r.EndDate = &end
	}
	r.Touch(strconv.Itoa(req.UserCode), now)
	return r
}

// ToModelExpense converts a domain Expense to its row shape.
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:        d.ExpenseID,
		UserCode:         d.UserCode,
		Description:      d.Description,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Category:         string(d.Category),
		IsRecurring:      d.Recurrence.IsRecurring,
		MaxOccurrences:   d.Recurrence.MaxOccurrences,
		PaymentType:      string(d.Payment.Type),
		IsInstallment:    d.Payment.IsInstallment,
		InstallmentCount: d.Payment.InstallmentCount,
		TotalValue:       d.Payment.TotalValue,
		AuditFields:      toModelAuditFields(d.AuditFields),
	}
	if d.Recurrence.Periodicity != "" {
		p := string(d.Recurrence.Periodicity)
		m.Periodicity = &p
	}
	if d.Payment.Notes != "" {
		n := d.Payment.Notes
		m.PaymentNotes = &n
	}
	if d.Notes != "" {
		n := d.Notes
		m.Notes = &n
	}
	return m
}

// ToDomainExpenseFromModel converts a row back to the domain shape.
func ToDomainExpenseFromModel(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:   m.ExpenseID,
		UserCode:    m.UserCode,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Category:    domain.ExpenseCategory(m.Category),
		Recurrence: domain.Recurrence{
			IsRecurring:    m.IsRecurring,
			MaxOccurrences: m.MaxOccurrences,
		},
		Payment: domain.Payment{
			Type:             domain.PaymentType(m.PaymentType),
			IsInstallment:    m.IsInstallment,
			InstallmentCount: m.InstallmentCount,
			TotalValue:       m.TotalValue,
		},
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
	if m.Periodicity != nil {
		d.Recurrence.Periodicity = domain.RecurrencePeriodicity(*m.Periodicity)
	}
	if m.PaymentNotes != nil {
		d.Payment.Notes = *m.PaymentNotes
	}
	if m.Notes != nil {
		d.Notes = *m.Notes
	}
	return d
}

// ToModelRevenue converts a domain Revenue to its row shape.
func ToModelRevenue(d domain.Revenue) models.Revenue {
	m := models.Revenue{
		RevenueID:      d.RevenueID,
		UserCode:       d.UserCode,
		Description:    d.Description,
		Amount:         d.Amount,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Type:           string(d.Type),
		IsRecurring:    d.Recurrence.IsRecurring,
		MaxOccurrences: d.Recurrence.MaxOccurrences,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
	if d.Recurrence.Periodicity != "" {
		p := string(d.Recurrence.Periodicity)
		m.Periodicity = &p
	}
	return m
}

// ToDomainRevenueFromModel converts a row back to the domain shape.
func ToDomainRevenueFromModel(m models.Revenue) domain.Revenue {
	d := domain.Revenue{
		RevenueID:   m.RevenueID,
		UserCode:    m.UserCode,
		Description: m.Description,
		Amount:      m.Amount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Type:        domain.RevenueType(m.Type),
		Recurrence: domain.Recurrence{
			IsRecurring:    m.IsRecurring,
			MaxOccurrences: m.MaxOccurrences,
		},
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
	if m.Periodicity != nil {
		d.Recurrence.Periodicity = domain.RecurrencePeriodicity(*m.Periodicity)
	}
	return d
}

// ToModelCommandFailure converts a domain CommandFailure to its row shape.
func ToModelCommandFailure(d domain.CommandFailure) models.CommandFailure {
	return models.CommandFailure{
		ID:             d.ID,
		CommandName:    d.CommandName,
		ErrorDetails:   d.ErrorDetails,
		Timestamp:      d.Timestamp,
		RequestContent: d.RequestContent,
		TraceID:        d.TraceID,
	}
}

func toModelAuditFields(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAuditFields(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
