package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensescontrol/expenses_control_app/internal/core/pipeline"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	interceptor      *pipeline.FailureInterceptor
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, i *pipeline.FailureInterceptor) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		interceptor:      i,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, i *pipeline.FailureInterceptor) {
	h := newReportingHandler(reportingService, i)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/monthly", h.getMonthlyReport)
	}
}

// getMonthlyReport godoc
// @Summary Generate the monthly report
// @Description Aggregates the authenticated user's expenses and revenues active in the given month and year
// @Tags reports
// @Produce json
// @Param month query int true "Reporting month (1-12)"
// @Param year query int true "Reporting year"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} dto.MonthlyReportResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.MonthlyReportResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	userCode, ok := authenticatedUserCode(c)
	if !ok {
		return
	}

	req := dto.MonthlyReportRequest{
		UserCode: userCode,
		Month:    intQuery(c, "month"),
		Year:     intQuery(c, "year"),
	}

	res := pipeline.Execute[dto.MonthlyReportRequest, dto.MonthlyReportResponse](
		c.Request.Context(), h.interceptor, req, h.reportingService.MonthlyReport,
	)
	respond(c, http.StatusOK, &res.BaseResponse, res)
}
