package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kotconnect/internal/errors"
	"kotconnect/internal/service"
)

// ExpenseHandler handles shared-expense endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
	userService    service.UserService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService, userService service.UserService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		userService:    userService,
	}
}

// CreateExpenseRequest represents an expense creation request.
type CreateExpenseRequest struct {
	Title          string `json:"title" validate:"required"`
	TotalAmount    string `json:"totalAmount" validate:"required"`
	ParticipantIDs []uint `json:"participantIds" validate:"required,min=1"`
}

// GetExpenses godoc
// @Summary List expenses for a dorm
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param dormId query int true "Dorm ID"
// @Success 200 {array} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	dormID, err := strconv.ParseUint(c.QueryParam("dormId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid dormId",
			Code:  "INVALID_DORM_ID",
		})
	}

	expenses, err := h.expenseService.GetExpensesByDormID(c.Request().Context(), uint(dormID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, expenses)
}

// CreateExpense godoc
// @Summary Create a shared expense scoped to a dorm
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dormCode path string true "Dorm join code"
// @Param request body CreateExpenseRequest true "Expense data"
// @Success 201 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{dormCode} [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	totalAmount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil || !totalAmount.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid total amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), c.Param("dormCode"), req.Title, totalAmount, req.ParticipantIDs, user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, expense)
}

// MarkSharePaid godoc
// @Summary Mark a participant's share of an expense as paid
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param userId path int true "User ID"
// @Success 200 {object} model.ExpenseShare
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id}/shares/{userId}/paid [put]
func (h *ExpenseHandler) MarkSharePaid(c echo.Context) error {
	expenseID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid expense id",
			Code:  "INVALID_ID",
		})
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}

	share, err := h.expenseService.MarkSharePaid(c.Request().Context(), uint(expenseID), uint(userID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, share)
}
