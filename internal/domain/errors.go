package domain

import "errors"

var (
	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound is returned when no cart row matches a lookup.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrOrderNotFound is returned when an order lookup matches nothing.
	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError marks a request that failed input validation. Handlers map
// it to a 422 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ErrValidation builds a ValidationError with the given reason.
func ErrValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
