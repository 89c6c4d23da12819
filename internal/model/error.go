package model

import "errors"

// Standard error codes surfaced to callers.
const (
	ErrCodeNetworkFailure    = "NETWORK_FAILURE"
	ErrCodeValidationFailure = "VALIDATION_FAILURE"
	ErrCodeServerRejected    = "SERVER_REJECTED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthenticated   = "UNAUTHENTICATED"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidInput      = "INVALID_INPUT"
)

// DomainError carries a stable code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// CodeOf returns the domain error code of err, or an empty string when err
// does not wrap a DomainError.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Common domain errors
var (
	ErrUnauthenticated = NewDomainError(ErrCodeUnauthenticated, "Please sign in to continue")
	ErrMissingContact  = NewDomainError(ErrCodeInvalidInput, "Address and phone number are required")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrProductNotFound = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrEmptyComment    = NewDomainError(ErrCodeValidationFailure, "Review comment is required")
	ErrInvalidRating   = NewDomainError(ErrCodeValidationFailure, "Rating must be between 1 and 5")
)
