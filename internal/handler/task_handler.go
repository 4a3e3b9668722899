package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService service.TaskService
	userService service.UserService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService, userService service.UserService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		userService: userService,
	}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// GetTasks godoc
// @Summary List tasks for a dorm
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param dormId query int true "Dorm ID"
// @Success 200 {array} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) GetTasks(c echo.Context) error {
	dormID, err := strconv.ParseUint(c.QueryParam("dormId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid dormId",
			Code:  "INVALID_DORM_ID",
		})
	}

	tasks, err := h.taskService.GetTasksByDormID(c.Request().Context(), uint(dormID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tasks)
}

// GetAllTasks godoc
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Task
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/all [get]
func (h *TaskHandler) GetAllTasks(c echo.Context) error {
	tasks, err := h.taskService.GetAllTasks(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tasks)
}

// GetTasksByType godoc
// @Summary List tasks of a given type
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param type query string true "Task type"
// @Success 200 {array} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks/type [get]
func (h *TaskHandler) GetTasksByType(c echo.Context) error {
	taskType := model.TaskType(c.QueryParam("type"))
	if !taskType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unknown task type",
			Code:  "INVALID_TASK_TYPE",
		})
	}

	tasks, err := h.taskService.GetTasksByType(c.Request().Context(), taskType)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a task scoped to a dorm
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dormCode path string true "Dorm join code"
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{dormCode} [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
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

	taskType := model.TaskType(req.Type)
	if !taskType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unknown task type",
			Code:  "INVALID_TASK_TYPE",
		})
	}

	dueDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date",
			Code:  "INVALID_DATE",
		})
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), c.Param("dormCode"), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        taskType,
		DueDate:     dueDate,
	}, user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, task)
}

// DeleteTask godoc
// @Summary Delete a task by id
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "task deleted successfully",
	})
}
