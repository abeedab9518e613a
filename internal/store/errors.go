package store

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired = errors.New("store: document title is required")
	ErrStateRequired = errors.New("store: editor state is required")
	ErrSlugRequired  = errors.New("store: slug is required")
)

// NotFoundError reports a missing document by the key used to look it up.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
