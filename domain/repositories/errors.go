package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the backend answers 404 for the addressed resource
	ErrNotFound = errors.New("resource not found")

	// ErrNetworkFailure covers transport errors and timeouts
	ErrNetworkFailure = errors.New("backend unreachable")
)

// BackendError is a non-2xx answer from the photo backend, or a 2xx answer whose body is unusable
type BackendError struct {
	Operation string
	Status    int
	Message   string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned status %d", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Operation, e.Status, e.Message)
}

// IsBackendError reports whether err wraps a *BackendError
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
