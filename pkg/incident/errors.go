package incident

import (
	"errors"
	"fmt"
)

// DuplicateIDError is returned by Store.Insert when an incident with the same
// ID has already been recorded. IDs stay reserved after resolution.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("an incident with ID '%s' already exists", e.ID)
}

// NotFoundError is returned when no incident in the store has the given ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("incident ID '%s' not found", e.ID)
}

// ErrInvalidField is wrapped by every validation error returned from the
// input boundary helpers in parse.go. The store itself never returns it.
var ErrInvalidField = errors.New("invalid incident field")

// IsDuplicateID reports whether err is, or wraps, a *DuplicateIDError
func IsDuplicateID(err error) bool {
	var d *DuplicateIDError
	return errors.As(err, &d)
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
