package dto

import "github.com/shopspring/decimal"

// MonthlyReportRequest aggregates a user's records active in a month/year.
type MonthlyReportRequest struct {
	UserCode int `json:"userCode" validate:"required,gt=0"`
	Month    int `json:"month" validate:"required,min=1,max=12"`
	Year     int `json:"year" validate:"required,gt=0"`
}

// MonthlyReportResult carries the aggregated monthly report.
type MonthlyReportResult struct {
	Month         int               `json:"month"`
	Year          int               `json:"year"`
	Expenses      []ExpenseResponse `json:"expenses"`
	Revenues      []RevenueResponse `json:"revenues"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	TotalRevenues decimal.Decimal   `json:"totalRevenues"`
	Balance       decimal.Decimal   `json:"balance"`
}

// MonthlyReportResponse is the envelope returned by the monthly report use
// case.
type MonthlyReportResponse struct {
	BaseResponse
	Result *MonthlyReportResult `json:"result,omitempty"`
}
