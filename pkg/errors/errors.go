package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrPaidBelowPurchase       = errors.New("paid amount must not be below purchase amount")
	ErrInvalidStartDate        = errors.New("invalid start date")
	ErrQuarterNotFound         = errors.New("quarter publication not found")
	ErrRateNotSolvable         = errors.New("no annual rate solvable for plan")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInstallmentCount = "INVALID_INSTALLMENT_COUNT"
	ErrCodeInvalidAmount           = "INVALID_AMOUNT"
	ErrCodePaidBelowPurchase       = "PAID_BELOW_PURCHASE"
	ErrCodeInvalidStartDate        = "INVALID_START_DATE"
	ErrCodeQuarterNotFound         = "QUARTER_NOT_FOUND"
	ErrCodeRateNotSolvable         = "RATE_NOT_SOLVABLE"
	ErrCodeDatabaseError           = "DATABASE_ERROR"
	ErrCodeCacheError              = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapInvalidInstallmentCount(count int) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInstallmentCount,
		fmt.Sprintf("Installment count %d is not a valid plan length", count),
		ErrInvalidInstallmentCount,
	)
}

func WrapInvalidAmount(amount int64) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Invalid amount: %d cents", amount),
		ErrInvalidAmount,
	)
}

func WrapInvalidStartDate(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidStartDate,
		fmt.Sprintf("Start date %q is not a valid calendar date", value),
		ErrInvalidStartDate,
	)
}

func WrapQuarterNotFound(label string) *BusinessError {
	return NewBusinessError(
		ErrCodeQuarterNotFound,
		fmt.Sprintf("Quarter publication %q is not known", label),
		ErrQuarterNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
