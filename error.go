package podlink

// General errors.
const (
	ErrInternal = Error("internal error")
	ErrNoMatch  = Error("no matching deep link")
)

// Error represents a podlink error.
type Error string

// Error returns the error as a string.
func (e Error) Error() string { return string(e) }
