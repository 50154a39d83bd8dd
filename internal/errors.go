package internal

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidID        ErrorCode = "INVALID_ID"
	ErrCodeMissingFields    ErrorCode = "MISSING_FIELDS"
	ErrCodeNoFieldsToUpdate ErrorCode = "NO_FIELDS_TO_UPDATE"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeDuplicate        ErrorCode = "DUPLICATE"
	ErrCodeReferenceMissing ErrorCode = "REFERENCE_NOT_FOUND"

	ErrCodeCaseNotFound          ErrorCode = "CASE_NOT_FOUND"
	ErrCodeCriminalNotFound      ErrorCode = "CRIMINAL_NOT_FOUND"
	ErrCodeInvestigationNotFound ErrorCode = "INVESTIGATION_NOT_FOUND"
	ErrCodeUserNotFound          ErrorCode = "USER_NOT_FOUND"
	ErrCodeAccusedAlreadyLinked  ErrorCode = "ACCUSED_ALREADY_LINKED"
	ErrCodeOfficerUnavailable    ErrorCode = "OFFICER_UNAVAILABLE"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeInsufficientRole   ErrorCode = "INSUFFICIENT_ROLE"
	ErrCodeMissingPermission  ErrorCode = "MISSING_PERMISSION"
)

// AppError carries the HTTP status and the message shown to the client.
// Cause is logged server-side and never serialized.
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
	return &AppError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Cause:      cause,
	}
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
	ErrCaseNotFound          = NewNotFoundError("Case not found", ErrCodeCaseNotFound)
	ErrCriminalNotFound      = NewNotFoundError("Criminal not found", ErrCodeCriminalNotFound)
	ErrInvestigationNotFound = NewNotFoundError("Investigation not found", ErrCodeInvestigationNotFound)
	ErrUserNotFound          = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrNoFieldsToUpdate      = NewValidationError("No valid fields to update", ErrCodeNoFieldsToUpdate)
	ErrOfficerUnavailable    = NewValidationError("Officer not found or inactive", ErrCodeOfficerUnavailable)

	ErrInvalidCredentials = NewUnauthorizedError("Invalid credentials", ErrCodeInvalidCredentials)
	ErrMissingToken       = NewUnauthorizedError("Access denied. No token provided.", ErrCodeMissingToken)
	ErrInvalidToken       = NewForbiddenError("Invalid or expired token.", ErrCodeInvalidToken)
	ErrInsufficientRole   = NewForbiddenError("Access denied. Insufficient permissions.", ErrCodeInsufficientRole)
	ErrPrincipalNotFound  = NewForbiddenError("User not found", ErrCodeUserNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
