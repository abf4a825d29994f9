package apperrors

import "fmt"

// The three outcome classes surfaced at the API boundary. Handlers map
// ValidationError to 400, NotFoundError to 403, and everything else
// (StorageError included) to 500.

type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}
