package domain

import "errors"

// ValidationError is a user-correctable precondition failure. The operation
// aborts with state unchanged and nothing is retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation builds a ValidationError sentinel.
func Validation(reason string) error { return &ValidationError{Reason: reason} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ServiceError carries the upstream order service's failure message
// verbatim. The cart is preserved; the buyer may retry manually.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

var (
	ErrEmptyCart       = Validation("empty cart")
	ErrLoginRequired   = Validation("login required")
	ErrNoPaymentMethod = Validation("payment method not selected")
	ErrInvalidEmail    = Validation("invalid email in user profile")

	// ErrSubmitInFlight guards against a second submit while one is still
	// talking to the order service.
	ErrSubmitInFlight = errors.New("submission already in progress")
)
