package llm

import "fmt"

// UnavailableError indicates the generation backend itself failed or its
// credentials are absent. At startup this is fatal configuration; at call
// time it surfaces as a server-fault condition.
type UnavailableError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s backend unavailable: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s backend unavailable: %s", e.Provider, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
