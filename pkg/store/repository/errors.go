package repository

import (
	"errors"
	"fmt"
)

// Error is returned for any failure to read aggregate data.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err as a repository *Error for op. Nil stays nil and errors
// that already are repository errors are returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// IsRepositoryError reports whether err carries a repository *Error.
func IsRepositoryError(err error) bool {
	var repoErr *Error
	return errors.As(err, &repoErr)
}
