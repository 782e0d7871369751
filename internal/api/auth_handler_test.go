package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goop-edu/goop-api/internal/api"
	"github.com/goop-edu/goop-api/internal/domain"
)

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("student login succeeds", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "sandy",
			"password": "123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, sandyID, resp.UserID)
		assert.Equal(t, domain.RoleStudent, resp.Role)
		assert.Equal(t, "Sandy Putra Pratama", resp.FullName)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("teacher login succeeds", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "bambang",
			"password": "123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, domain.RoleTeacher, resp.Role)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "sandy",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "wrong", "password must not echo back")
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "sandy",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/login", "", "not-an-object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("student identity", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/auth/me", asStudent(t, sandyID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.StudentResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "sandy", resp.Username)
		assert.NotContains(t, rec.Body.String(), `"password"`)
	})

	t.Run("teacher identity", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/auth/me", asTeacher(t, bambangID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TeacherResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "bambang", resp.Username)
	})

	t.Run("without token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/api/auth/me", "Bearer not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/logout", asStudent(t, sandyID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
