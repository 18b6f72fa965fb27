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
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeInvalidDateFormat    ErrorCode = "INVALID_DATE_FORMAT"
	ErrCodeDateTooFarFuture     ErrorCode = "DATE_TOO_FAR_FUTURE"
	ErrCodeDateTooFarPast       ErrorCode = "DATE_TOO_FAR_PAST"
	ErrCodeInvalidCategory      ErrorCode = "INVALID_CATEGORY"
	ErrCodeInvalidPaymentMethod ErrorCode = "INVALID_PAYMENT_METHOD"
	ErrCodeAmountNonPositive    ErrorCode = "AMOUNT_NON_POSITIVE"
	ErrCodeAmountTooLarge       ErrorCode = "AMOUNT_TOO_LARGE"
	ErrCodeAmountTooPrecise     ErrorCode = "AMOUNT_TOO_PRECISE"
	ErrCodeDescriptionTooLong   ErrorCode = "DESCRIPTION_TOO_LONG"
	ErrCodeDaysOutOfRange       ErrorCode = "DAYS_OUT_OF_RANGE"
	ErrCodeInvalidBudgetLimit   ErrorCode = "INVALID_BUDGET_LIMIT"

	ErrCodeExpenseNotFound ErrorCode = "EXPENSE_NOT_FOUND"
	ErrCodeStorageFailure  ErrorCode = "STORAGE_FAILURE"
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
	e.Cause = cause
	return e
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

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeStorageFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

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
