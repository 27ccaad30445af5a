package services

import (
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services with their shared
// dependencies.
func NewServiceContainer(uowFactory portsrepo.UnitOfWorkFactory, validator portssvc.Validator) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:   NewExpenseService(uowFactory, validator),
		Revenue:   NewRevenueService(uowFactory, validator),
		Reporting: NewReportingService(uowFactory, validator),
	}
}
