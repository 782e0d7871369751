package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Run("object payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/students/1", nil)
		w := httptest.NewRecorder()

		RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{
			"id":        1,
			"full_name": "Sandy Putra Pratama",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "Sandy Putra Pratama", body["full_name"])
	})

	t.Run("empty slice stays a JSON array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
		w := httptest.NewRecorder()

		RespondWithJSON(w, req, http.StatusOK, []string{})

		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("nil payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()

		RespondWithJSON(w, req, http.StatusOK, nil)

		assert.Equal(t, "null\n", w.Body.String())
	})
}

// selfRef cannot be JSON encoded; used to exercise the encode failure path.
type selfRef struct {
	Self *selfRef
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()

	data := &selfRef{}
	data.Self = data

	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	oldLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(oldLogger)

	RespondWithJSON(w, req, http.StatusOK, data)

	// Headers are already committed; the failure only surfaces in the logs.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	t.Run("includes trace ID from context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, "trace-abc123")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusUnauthorized, "Invalid credentials")

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid credentials", resp.Error)
		assert.Equal(t, "trace-abc123", resp.TraceID)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/1", nil)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusForbidden, "You do not own this project")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "You do not own this project", resp.Error)
		assert.Empty(t, resp.TraceID)
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		expectedLogLevel string
	}{
		{
			name:             "server error logs at ERROR",
			statusCode:       http.StatusInternalServerError,
			message:          "An unexpected error occurred",
			err:              errors.New("session state corrupted"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error logs at DEBUG",
			statusCode:       http.StatusNotFound,
			message:          "Student not found",
			err:              errors.New("entity not found: student"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "auth failure logs at DEBUG",
			statusCode:       http.StatusUnauthorized,
			message:          "Invalid credentials",
			err:              errors.New("invalid credentials"),
			expectedLogLevel: "DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), TraceIDKey, "trace-abc123")
			req := httptest.NewRequest(http.MethodGet, "/api/tests", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			oldLogger := slog.Default()
			slog.SetDefault(logger)
			defer slog.SetDefault(oldLogger)

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)

			assert.Equal(t, tc.statusCode, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Error)
			assert.Equal(t, "trace-abc123", resp.TraceID)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, tc.expectedLogLevel)
			assert.Contains(t, logOutput, "trace_id=trace-abc123")
			assert.Contains(t, logOutput, "error_type=")

			// The raw error never reaches the client.
			assert.NotContains(t, w.Body.String(), tc.err.Error())
		})
	}
}
