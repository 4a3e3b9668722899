package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kotconnect/internal/errors"
	"kotconnect/internal/service"
)

// DormHandler handles dorm endpoints.
type DormHandler struct {
	dormService service.DormService
	userService service.UserService
}

// NewDormHandler creates a new dorm handler.
func NewDormHandler(dormService service.DormService, userService service.UserService) *DormHandler {
	return &DormHandler{
		dormService: dormService,
		userService: userService,
	}
}

// CreateDormRequest represents a dorm creation request.
type CreateDormRequest struct {
	Name string `json:"name" validate:"required"`
}

// JoinDormRequest represents a join-by-code request.
type JoinDormRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

// GetDorm godoc
// @Summary Get the dorm the authenticated user belongs to
// @Tags dorms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Dorm
// @Success 204 "user has no dorm"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /dorms [get]
func (h *DormHandler) GetDorm(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	dorm, err := h.dormService.FindDormForUser(c.Request().Context(), user)
	if err != nil {
		if err == errors.ErrDormNotFound {
			return c.NoContent(http.StatusNoContent)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, dorm)
}

// CreateDorm godoc
// @Summary Create a dorm with the authenticated user as first member
// @Tags dorms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDormRequest true "Dorm data"
// @Success 201 {object} model.Dorm
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dorms [post]
func (h *DormHandler) CreateDorm(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req CreateDormRequest
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

	dorm, err := h.dormService.CreateDorm(c.Request().Context(), user, req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, dorm)
}

// JoinDorm godoc
// @Summary Join a dorm by its invite code
// @Tags dorms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinDormRequest true "Join code"
// @Success 200 {object} model.Dorm
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /dorms [put]
func (h *DormHandler) JoinDorm(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req JoinDormRequest
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

	dorm, err := h.dormService.JoinByCode(c.Request().Context(), user, req.Code)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, dorm)
}
