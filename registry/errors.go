package registry

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownServerError reports a lookup for a name that was never registered.
// Known carries the sorted names that were registered at the time of the
// lookup so the message can point the caller at valid choices.
type UnknownServerError struct {
	Name  string
	Known []string
}

// NewUnknownServerError creates an UnknownServerError for name given the
// registered names.
func NewUnknownServerError(name string, known []string) *UnknownServerError {
	return &UnknownServerError{Name: name, Known: known}
}

// Error implements the error interface.
func (e *UnknownServerError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown server %q: no servers registered", e.Name)
	}
	return fmt.Sprintf("unknown server %q: registered servers are %s", e.Name, strings.Join(e.Known, ", "))
}

// IsUnknownServer reports whether err is (or wraps) an UnknownServerError.
func IsUnknownServer(err error) bool {
	var target *UnknownServerError
	return errors.As(err, &target)
}
