package app

import "errors"

// ValidationError reports input a guard rejected. The reason is safe to
// show to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// invalid wraps a guard error as a ValidationError.
func invalid(err error) error {
	return &ValidationError{Reason: err.Error()}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
