package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDormNotFound is returned when a dorm is not found.
	ErrDormNotFound = errors.New("dorm not found")
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrShareNotFound is returned when an expense share is not found.
	ErrShareNotFound = errors.New("expense share not found")
	// ErrAlreadyMember is returned when a user joins a dorm they already belong to.
	ErrAlreadyMember = errors.New("user is already a member of this dorm")
	// ErrNotDormMember is returned when a user acts on a dorm they do not belong to.
	ErrNotDormMember = errors.New("user is not a member of this dorm")
	// ErrMultipleDorms is returned when a single-dorm lookup finds more than one membership.
	ErrMultipleDorms = errors.New("user belongs to multiple dorms")
	// ErrBirthDateNotPast is returned when a birth date is not strictly in the past.
	ErrBirthDateNotPast = errors.New("birth date must be in the past")
	// ErrDateInPast is returned when a due or event date is before today.
	ErrDateInPast = errors.New("date must be in the present or future")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrDormNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "DORM_NOT_FOUND")
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrEventNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case ErrExpenseNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPENSE_NOT_FOUND")
	case ErrShareNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SHARE_NOT_FOUND")
	case ErrAlreadyMember:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_MEMBER")
	case ErrNotDormMember:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_DORM_MEMBER")
	case ErrMultipleDorms:
		return NewHTTPError(http.StatusConflict, err.Error(), "MULTIPLE_DORMS")
	case ErrBirthDateNotPast, ErrDateInPast:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
