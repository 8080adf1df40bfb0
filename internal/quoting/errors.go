package quoting

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a referenced record that does not exist
// (or is not attached to the quote being edited).
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
