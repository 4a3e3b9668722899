package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"kotconnect/internal/errors"
	"kotconnect/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService service.EventService
	userService  service.UserService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, userService service.UserService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		userService:  userService,
	}
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// GetEvents godoc
// @Summary List events for a dorm
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param dormId query int true "Dorm ID"
// @Success 200 {array} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /events [get]
func (h *EventHandler) GetEvents(c echo.Context) error {
	dormID, err := strconv.ParseUint(c.QueryParam("dormId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid dormId",
			Code:  "INVALID_DORM_ID",
		})
	}

	events, err := h.eventService.GetEventsByDormID(c.Request().Context(), uint(dormID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// GetAllEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/all [get]
func (h *EventHandler) GetAllEvents(c echo.Context) error {
	events, err := h.eventService.GetAllEvents(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	event, err := h.eventService.GetEventByID(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event scoped to a dorm
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dormCode path string true "Dorm join code"
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{dormCode} [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req CreateEventRequest
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

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date",
			Code:  "INVALID_DATE",
		})
	}

	event, err := h.eventService.CreateEvent(c.Request().Context(), c.Param("dormCode"), service.EventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Date:        date,
	}, user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete an event by id
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "event deleted successfully",
	})
}
