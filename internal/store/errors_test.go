package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitySentinelsWrapGenericOnes(t *testing.T) {
	t.Parallel()

	notFound := []error{
		ErrStudentNotFound,
		ErrTeacherNotFound,
		ErrMaterialNotFound,
		ErrTestNotFound,
		ErrProjectNotFound,
	}
	for _, err := range notFound {
		assert.ErrorIs(t, err, ErrNotFound)
		assert.True(t, IsNotFoundError(err))
		assert.False(t, IsDuplicateError(err))
	}

	assert.ErrorIs(t, ErrUsernameExists, ErrDuplicate)
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.False(t, IsNotFoundError(ErrUsernameExists))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("format with wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("student", "update", "no such student", ErrStudentNotFound)
		assert.Equal(t,
			"update operation on student failed: no such student: entity not found: student",
			err.Error())
	})

	t.Run("format without wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("project", "delete", "rejected", nil)
		assert.Equal(t, "delete operation on project failed: rejected", err.Error())
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("teacher", "create", "username already taken", ErrUsernameExists)
		assert.ErrorIs(t, err, ErrUsernameExists)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.True(t, IsDuplicateError(err))
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		t.Parallel()
		inner := NewStoreError("test", "update", "no such test", ErrTestNotFound)
		outer := fmt.Errorf("refreshing answer key: %w", inner)

		var storeErr *StoreError
		require.True(t, errors.As(outer, &storeErr))
		assert.Equal(t, "test", storeErr.Entity)
		assert.Equal(t, "update", storeErr.Operation)
		assert.True(t, IsNotFoundError(outer))
	})
}
