package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap("lead time", nil))
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap("lead time", cause)

		assert.True(t, IsRepositoryError(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "repository lead time: connection refused", err.Error())
	})

	t.Run("does not double wrap", func(t *testing.T) {
		inner := Wrap("staff count", context.Canceled)
		outer := Wrap("capacity", fmt.Errorf("branch failed: %w", inner))

		var repoErr *Error
		assert.True(t, errors.As(outer, &repoErr))
		assert.Equal(t, "staff count", repoErr.Op)
	})

	t.Run("plain errors are not repository errors", func(t *testing.T) {
		assert.False(t, IsRepositoryError(errors.New("boom")))
	})
}
