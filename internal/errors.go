package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeForbidden  ErrorType = "FORBIDDEN"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal   ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidWeight    ErrorCode = "INVALID_WEIGHT"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	ErrCodeRecordNotFound  ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeRootUserLocked  ErrorCode = "ROOT_USER_LOCKED"
	ErrCodeWrongPassword   ErrorCode = "WRONG_PASSWORD"
	ErrCodeBuiltinOption   ErrorCode = "BUILTIN_OPTION"
	ErrCodeNoSourceUnits   ErrorCode = "NO_SOURCE_UNITS"
	ErrCodeEmptyBatch      ErrorCode = "EMPTY_BATCH"
	ErrCodeStorageWrite    ErrorCode = "STORAGE_WRITE_FAILED"
	ErrCodeRestoreParse    ErrorCode = "RESTORE_PARSE_FAILED"
	ErrCodeInsightsOffline ErrorCode = "INSIGHTS_UNAVAILABLE"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
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

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
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

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
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

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewExternalError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

var (
	ErrRecordNotFound = NewNotFoundError("record not found", ErrCodeRecordNotFound)
	ErrUserNotFound   = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrRootUserLocked = NewForbiddenError("the root user cannot be deleted", ErrCodeRootUserLocked)
	ErrWrongPassword  = NewValidationError("current password does not match", ErrCodeWrongPassword)
	ErrBuiltinOption  = NewValidationError("built-in options cannot be removed or renamed", ErrCodeBuiltinOption)
	ErrNoSourceUnits  = NewValidationError("no source quantities recorded, nothing to distribute", ErrCodeNoSourceUnits)
	ErrEmptyBatch     = NewValidationError("distribution produced no allocations", ErrCodeEmptyBatch)
	ErrInvalidWeight  = NewValidationError("weight must be a positive amount", ErrCodeInvalidWeight)
	ErrRestoreParse   = NewValidationError("backup document could not be parsed, store left untouched", ErrCodeRestoreParse)
	ErrInsightsOff    = NewExternalError("insight service unavailable", ErrCodeInsightsOffline)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
