package world

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("room not found")

// NotFoundError is returned when a mutation names a room the station does
// not have. Lookups never return it.
type NotFoundError struct {
	Room string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("room %q not found", e.Room)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
