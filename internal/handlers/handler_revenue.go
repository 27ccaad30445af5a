package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensescontrol/expenses_control_app/internal/core/pipeline"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
)

// revenueHandler handles HTTP requests related to revenues
type revenueHandler struct {
	revenueService portssvc.RevenueService
	interceptor    *pipeline.FailureInterceptor
}

// newRevenueHandler creates a new revenueHandler
func newRevenueHandler(rs portssvc.RevenueService, i *pipeline.FailureInterceptor) *revenueHandler {
	return &revenueHandler{
		revenueService: rs,
		interceptor:    i,
	}
}

// registerRevenueRoutes registers routes related to revenues
func registerRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueService, i *pipeline.FailureInterceptor) {
	h := newRevenueHandler(revenueService, i)

	revenueGroup := rg.Group("/revenues")
	{
		revenueGroup.POST("", h.createRevenue)
		revenueGroup.GET("", h.getRevenuesByUser)
	}
}

// createRevenue godoc
// @Summary Create a new revenue
// @Description Records a new revenue, possibly recurring, for the authenticated user
// @Tags revenues
// @Accept json
// @Produce json
// @Param revenue body dto.CreateRevenueRequest true "Revenue details"
// @Success 201 {object} dto.CreateRevenueResponse
// @Failure 400 {object} dto.CreateRevenueResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.CreateRevenueResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /revenues [post]
func (h *revenueHandler) createRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create revenue payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	res := pipeline.Execute[dto.CreateRevenueRequest, dto.CreateRevenueResponse](
		c.Request.Context(), h.interceptor, req, h.revenueService.CreateRevenue,
	)
	respond(c, http.StatusCreated, &res.BaseResponse, res)
}

// getRevenuesByUser godoc
// @Summary List the authenticated user's revenues
// @Description Lists revenues, optionally restricted to the records active in a month/year reporting period
// @Tags revenues
// @Produce json
// @Param month query int false "Reporting month (1-12), requires year"
// @Param year query int false "Reporting year, requires month"
// @Success 200 {object} dto.GetRevenuesByUserResponse
// @Failure 400 {object} dto.GetRevenuesByUserResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.GetRevenuesByUserResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /revenues [get]
func (h *revenueHandler) getRevenuesByUser(c *gin.Context) {
	userCode, ok := authenticatedUserCode(c)
	if !ok {
		return
	}

	req := dto.GetRevenuesByUserRequest{
		UserCode: userCode,
		Month:    intQuery(c, "month"),
		Year:     intQuery(c, "year"),
	}

	res := pipeline.Execute[dto.GetRevenuesByUserRequest, dto.GetRevenuesByUserResponse](
		c.Request.Context(), h.interceptor, req, h.revenueService.GetRevenuesByUser,
	)
	respond(c, http.StatusOK, &res.BaseResponse, res)
}
