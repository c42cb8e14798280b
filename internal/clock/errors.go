package clock

import "fmt"

// ErrorKind classifies validation failures so transports can map them to
// protocol-appropriate status codes.
type ErrorKind string

const (
	// KindInvalidArgument indicates a caller-supplied value that failed
	// validation (unknown zone, out-of-range coordinate, malformed range).
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// Error is a structured validation error. Field names the offending input
// so callers can surface a precise, user-facing message.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidArgument builds a validation error for the given field.
func InvalidArgument(field, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsValidation returns the structured validation error wrapped in err, if any.
func AsValidation(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	ve, ok := err.(*Error)
	return ve, ok
}
