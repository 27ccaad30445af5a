package services

// Validator checks an input object against its declarative rules and returns
// the violated-rule messages, empty when the input is valid. It runs before
// any transaction begins, never inside one.
type Validator interface {
	Validate(input any) []string
}

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality from the
// handlers.
type ServiceContainer struct {
	Expense   ExpenseService
	Revenue   RevenueService
	Reporting ReportingService
}
