package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed in the context by the authentication
// middleware; a missing or zero ID means the request is unauthenticated.
func getUserIDFromContext(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

// getUserRoleFromContext extracts the authenticated user's role from the
// request context.
func getUserRoleFromContext(r *http.Request) (domain.Role, bool) {
	role, ok := r.Context().Value(shared.UserRoleContextKey).(domain.Role)
	if !ok {
		return "", false
	}
	return role, true
}

// isTeacher reports whether the request was made with a teacher token.
func isTeacher(r *http.Request) bool {
	role, ok := getUserRoleFromContext(r)
	return ok && role == domain.RoleTeacher
}

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handleUserIDAndPathID extracts both the authenticated user's ID from the
// context and an integer ID from the path. It writes an error response and
// returns false if either extraction fails.
func handleUserIDAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (int, int, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return 0, 0, false
	}

	pathID, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	return userID, pathID, true
}
