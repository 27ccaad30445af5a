package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expensescontrol/expenses_control_app/internal/core/pipeline"
	portssvc "github.com/expensescontrol/expenses_control_app/internal/core/ports/services"
	"github.com/expensescontrol/expenses_control_app/internal/dto"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
)

// expenseHandler handles HTTP requests related to expenses
type expenseHandler struct {
	expenseService portssvc.ExpenseService
	interceptor    *pipeline.FailureInterceptor
}

// newExpenseHandler creates a new expenseHandler
func newExpenseHandler(es portssvc.ExpenseService, i *pipeline.FailureInterceptor) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
		interceptor:    i,
	}
}

// registerExpenseRoutes registers routes related to expenses
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseService, i *pipeline.FailureInterceptor) {
	h := newExpenseHandler(expenseService, i)

	expenseGroup := rg.Group("/expenses")
	{
		expenseGroup.POST("", h.createExpense)
		expenseGroup.GET("", h.getExpensesByUser)
		expenseGroup.GET("/:expense_id", h.getExpenseByID)
	}
}

// createExpense godoc
// @Summary Create a new expense
// @Description Records a new expense, possibly recurring, for the authenticated user
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.CreateExpenseResponse
// @Failure 400 {object} dto.CreateExpenseResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.CreateExpenseResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create expense payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	res := pipeline.Execute[dto.CreateExpenseRequest, dto.CreateExpenseResponse](
		c.Request.Context(), h.interceptor, req, h.expenseService.CreateExpense,
	)
	respond(c, http.StatusCreated, &res.BaseResponse, res)
}

// getExpensesByUser godoc
// @Summary List the authenticated user's expenses
// @Description Lists expenses, optionally restricted to the records active in a month/year reporting period
// @Tags expenses
// @Produce json
// @Param month query int false "Reporting month (1-12), requires year"
// @Param year query int false "Reporting year, requires month"
// @Success 200 {object} dto.GetExpensesByUserResponse
// @Failure 400 {object} dto.GetExpensesByUserResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.GetExpensesByUserResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) getExpensesByUser(c *gin.Context) {
	userCode, ok := authenticatedUserCode(c)
	if !ok {
		return
	}

	req := dto.GetExpensesByUserRequest{
		UserCode: userCode,
		Month:    intQuery(c, "month"),
		Year:     intQuery(c, "year"),
	}

	res := pipeline.Execute[dto.GetExpensesByUserRequest, dto.GetExpensesByUserResponse](
		c.Request.Context(), h.interceptor, req, h.expenseService.GetExpensesByUser,
	)
	respond(c, http.StatusOK, &res.BaseResponse, res)
}

// getExpenseByID godoc
// @Summary Fetch a single expense
// @Description Fetches one expense by its id
// @Tags expenses
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.GetExpenseByIDResponse
// @Failure 400 {object} dto.GetExpenseByIDResponse "Business rule violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.GetExpenseByIDResponse "Internal error with trace id"
// @Security BearerAuth
// @Router /expenses/{expense_id} [get]
func (h *expenseHandler) getExpenseByID(c *gin.Context) {
	req := dto.GetExpenseByIDRequest{ExpenseID: c.Param("expense_id")}

	res := pipeline.Execute[dto.GetExpenseByIDRequest, dto.GetExpenseByIDResponse](
		c.Request.Context(), h.interceptor, req, h.expenseService.GetExpenseByID,
	)
	respond(c, http.StatusOK, &res.BaseResponse, res)
}

// respond maps the response taxonomy onto HTTP statuses: business-rule
// failures are the caller's to fix, internal failures expose only a trace id.
func respond(c *gin.Context, successStatus int, base *dto.BaseResponse, body any) {
	switch {
	case base.IsSuccess():
		c.JSON(successStatus, body)
	case base.ErrorType == dto.InternalError:
		c.JSON(http.StatusInternalServerError, body)
	default:
		c.JSON(http.StatusBadRequest, body)
	}
}

// authenticatedUserCode resolves the numeric user code from the JWT subject.
func authenticatedUserCode(c *gin.Context) (int, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	subject, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userCode, err := strconv.Atoi(subject)
	if err != nil || userCode <= 0 {
		logger.Warn("Token subject is not a valid user code", slog.String("subject", subject))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
		return 0, false
	}
	return userCode, true
}

// intQuery parses an optional integer query parameter, returning zero when
// absent or malformed.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
