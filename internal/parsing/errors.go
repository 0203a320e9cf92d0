package parsing

import "fmt"

// ParseError indicates that a generation backend's response could not be
// turned into valid structured data even after fence stripping and
// substring recovery. Surfaced to callers as a server-fault condition.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InputError indicates caller-supplied data failed a precondition. It is a
// client-fault condition and is never retried.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
