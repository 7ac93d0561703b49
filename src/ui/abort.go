package ui

import "fmt"

// AbortError is a user-facing failure: a condition the user can fix
// (missing manifest field, absent credentials, existing file, ...).
// The top-level error translation prints its message as a single line,
// without the generic "Error:" prefix reserved for unexpected failures.
type AbortError struct {
	Message string
}

func (e *AbortError) Error() string { return e.Message }

// Abortf builds an AbortError from a format string.
func Abortf(format string, args ...any) error {
	return &AbortError{Message: fmt.Sprintf(format, args...)}
}
