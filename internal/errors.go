package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	ErrCodeInvalidMonth     ErrorCode = "INVALID_MONTH"
	ErrCodeInvalidDuration  ErrorCode = "INVALID_DURATION"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"

	ErrCodeEmployeeNotFound   ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeDepartmentNotFound ErrorCode = "DEPARTMENT_NOT_FOUND"
	ErrCodeTaskTypeNotFound   ErrorCode = "TASK_TYPE_NOT_FOUND"
	ErrCodeTaskRecordNotFound ErrorCode = "TASK_RECORD_NOT_FOUND"
	ErrCodeTaskReportNotFound ErrorCode = "TASK_REPORT_NOT_FOUND"
	ErrCodeRatingNotFound     ErrorCode = "PERFORMANCE_RATING_NOT_FOUND"
	ErrCodePaymentNotFound    ErrorCode = "INCENTIVE_PAYMENT_NOT_FOUND"

	ErrCodeUserExists         ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeMissingAuthHeader  ErrorCode = "MISSING_AUTH_HEADER"
	ErrCodeInsufficientRole   ErrorCode = "INSUFFICIENT_ROLE"
)

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewInvalidReferenceError reports a foreign key that does not resolve to an
// existing row, e.g. "Invalid ManagerID".
func NewInvalidReferenceError(field string) *AppError {
	return NewValidationError(fmt.Sprintf("Invalid %s", field), ErrCodeInvalidReference)
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewInternalError wraps an unexpected failure. The cause is logged by the
// transport layer and never serialized to the client.
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUserExists         = NewConflictError("user already exists", ErrCodeUserExists)
	ErrInvalidCredentials = NewUnauthorizedError("invalid username or password", ErrCodeInvalidCredentials)
	ErrMissingAuthHeader  = NewUnauthorizedError("authorization header missing", ErrCodeMissingAuthHeader)
	ErrTokenExpired       = NewUnauthorizedError("token expired", ErrCodeTokenExpired)
	ErrInvalidToken       = NewForbiddenError("failed to authenticate token", ErrCodeInvalidToken)
	ErrInsufficientRole   = NewForbiddenError("forbidden: insufficient role", ErrCodeInsufficientRole)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
