package repository

import (
	"errors"
	"fmt"
)

// ErrInvalidFile marks an upload that could not be read as a table
var ErrInvalidFile = errors.New("invalid file")

// APIError is a non-200 answer from the prediction endpoint. The body is not inspected.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d", e.StatusCode)
}

func invalidFile(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFile, fmt.Sprintf(format, args...))
}
