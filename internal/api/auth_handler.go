package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/service/auth"
	"github.com/goop-edu/goop-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		validator:  validator.New(),
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login. Credentials are checked against student
// accounts first, then teacher accounts, mirroring the store's scan order.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	principal, err := h.userStore.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Failed logins get a uniform response regardless of whether the
		// username exists.
		HandleAPIError(w, r, err, "")
		return
	}

	user := principal.Core()
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		log.Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.Int("user_id", user.ID))
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:   user.ID,
		Role:     user.Role,
		FullName: user.FullName,
		Token:    token,
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so this clears the
// store's session slot; the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.userStore.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me, returning the account behind the request's token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	role, _ := getUserRoleFromContext(r)
	switch role {
	case domain.RoleTeacher:
		teacher, err := h.userStore.GetTeacherByID(r.Context(), userID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, teacherToResponse(teacher))
	default:
		student, err := h.userStore.GetStudentByID(r.Context(), userID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(student))
	}
}
