package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that a sale adjustment would drive an item's
// current stock below zero. The adjustment is rejected and the stock is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrMissingRate indicates that a required exchange rate pair is not present in
// the rate matrix. Conversion fails fast instead of silently zeroing the
// contribution of the unpaired currency.
var ErrMissingRate = errors.New("exchange rate not defined")

// AppError wraps a lower-level error with an HTTP-ish status code and message.
// Used by repositories for infrastructure failures that are not one of the
// sentinel conditions above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
