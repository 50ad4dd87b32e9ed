// Package apperr defines the errors the compiler and the API return, and the
// echo handler that maps them to HTTP responses.
package apperr

// ValidationError is a problem with the request itself, such as a missing
// expression or a malformed comparison id. GlobalErrorHandler answers 400.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NewValidationWrap keeps err reachable through errors.Is and errors.As.
func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
