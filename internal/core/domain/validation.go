package domain

// ValidationError is a user-correctable input fault. The detail message is
// safe to render to clients.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}
