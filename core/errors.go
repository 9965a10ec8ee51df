package core

import (
	"errors"
)

// ErrInvalidToken signals a session token that failed verification or expired.
// Middleware and handlers map this to 403 Forbidden.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrInvalidTokenPayload signals an identity token that verified but is
// missing required claims (subject or email). Handlers map this to 400.
var ErrInvalidTokenPayload = errors.New("invalid token payload")

// ValidationError reports a rejected client input. Category is the error
// header returned to the client (e.g. "Invalid coordinates") and Details
// the human-readable reason.
type ValidationError struct {
	Category string
	Details  string
}

func (e *ValidationError) Error() string {
	return e.Details
}

func NewValidationError(category, details string) *ValidationError {
	return &ValidationError{Category: category, Details: details}
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
