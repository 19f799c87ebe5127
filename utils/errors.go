package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain error kinds shared by the OTP and coupon flows. Handlers map
// these onto HTTP statuses; the messages are the client-visible text.
var (
	// ErrNotFound covers unknown identities and coupon codes. For coupons
	// it deliberately also covers inactive and out-of-window codes.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCode covers both an unknown identity and a wrong OTP; the
	// two are not distinguished to the caller.
	ErrInvalidCode   = errors.New("invalid OTP")
	ErrExpired       = errors.New("OTP has expired")
	ErrLimitExceeded = errors.New("coupon usage limit exceeded")
	ErrAlreadyUsed   = errors.New("you have already used this coupon")
	ErrUnsupported   = errors.New("coupon type is not supported")
)

// BelowMinimumError is returned when the cart total does not reach the
// coupon's minimum; the message carries the required amount.
type BelowMinimumError struct {
	MinimumAmount float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount of %.2f required", e.MinimumAmount)
}

// IsDuplicateKey reports whether err is a unique-constraint violation
// from the database driver. Handlers map these onto 409 responses.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// AppError represents an application error with an HTTP status.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// UnauthorizedError creates a 401 Unauthorized error
func UnauthorizedError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
