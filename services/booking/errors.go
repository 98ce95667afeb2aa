package booking

// ConflictError signals a rejected booking request. It is a normal business
// outcome, reported to the caller for display, not a system failure.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}
