package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goop-edu/goop-api/internal/api"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/service"
	"github.com/goop-edu/goop-api/internal/service/auth"
	"github.com/goop-edu/goop-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", store.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"student not found", store.ErrStudentNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: project with ID 42", store.ErrProjectNotFound), http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"test inactive", service.ErrTestInactive, http.StatusConflict},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict},
		{"integrity violation", store.ErrIntegrityViolation, http.StatusBadRequest},
		{"score out of range", domain.ErrScoreOutOfRange, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"validation error", domain.NewValidationError("username", "cannot be empty", domain.ErrValidation), http.StatusBadRequest},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
		{"wrapped service error", service.NewProjectServiceError("grade", "boom", store.ErrProjectNotFound), http.StatusNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid credentials", store.ErrInvalidCredentials, "Invalid credentials"},
		{"not owned", service.ErrNotOwned, "You do not own this project"},
		{"student not found", store.ErrStudentNotFound, "Student not found"},
		{"test not found", store.ErrTestNotFound, "Test not found"},
		{"generic not found", store.ErrNotFound, "Record not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"test inactive", service.ErrTestInactive, "Test is not active"},
		{"invalid transition", domain.ErrInvalidTransition, "Operation not allowed in the project's current state"},
		{"score out of range", domain.ErrScoreOutOfRange, "Score must be between 0 and 100"},
		{"integrity violation", store.ErrIntegrityViolation, "Referenced record does not exist"},
		{"unknown error leaks nothing", errors.New("pq: password authentication failed"), "An unexpected error occurred"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, api.GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("validation error includes field", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("username", "cannot be empty", domain.ErrValidation)
		assert.Equal(t, "Invalid username: cannot be empty", api.GetSafeErrorMessage(err))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("extracts field and tag", func(t *testing.T) {
		t.Parallel()

		err := errors.New("Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag")
		assert.Equal(t, "Invalid Username: required field", api.SanitizeValidationError(err))
	})

	t.Run("non-validation errors fall back", func(t *testing.T) {
		t.Parallel()

		err := errors.New("some internal failure with details")
		assert.Equal(t, "Validation error", api.SanitizeValidationError(err))
	})
}
