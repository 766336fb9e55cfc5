package service

import "fmt"

// ValidationError rejects a checkout request because of its contents:
// an unparseable product reference or a cart line pointing at a product
// the store does not have. It maps to a client-error response and is
// never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
