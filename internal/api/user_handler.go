package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/store"
)

// UserHandler handles student and teacher account API requests.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// ListStudents handles GET /students requests.
func (h *UserHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students := h.userStore.GetAllStudents(r.Context())

	responses := make([]StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, studentToResponse(&students[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetStudent handles GET /students/{id} requests.
func (h *UserHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	student, err := h.userStore.GetStudentByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(student))
}

// CreateStudent handles POST /students requests. Restricted to teachers.
func (h *UserHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateStudentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	student, err := domain.NewStudent(
		req.Username, req.Password, req.Email, req.FullName, req.NIM, req.ClassName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.CreateStudent(r.Context(), student); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("student account created",
		slog.Int("student_id", student.ID),
		slog.String("class_name", student.ClassName))

	shared.RespondWithJSON(w, r, http.StatusCreated, studentToResponse(student))
}

// UpdateStudent handles PUT /students/{id} requests. Restricted to teachers.
// The username stays as registered; a blank password keeps the current one.
func (h *UserHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	existing, err := h.userStore.GetStudentByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateStudentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	existing.Email = req.Email
	existing.FullName = req.FullName
	existing.NIM = req.NIM
	existing.ClassName = req.ClassName
	if req.Password != "" {
		existing.Password = req.Password
	}

	if err := h.userStore.UpdateStudent(r.Context(), existing); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("student account updated", slog.Int("student_id", existing.ID))

	shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(existing))
}

// ListTeachers handles GET /teachers requests.
func (h *UserHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers := h.userStore.GetAllTeachers(r.Context())

	responses := make([]TeacherResponse, 0, len(teachers))
	for i := range teachers {
		responses = append(responses, teacherToResponse(&teachers[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetTeacher handles GET /teachers/{id} requests.
func (h *UserHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	teacher, err := h.userStore.GetTeacherByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, teacherToResponse(teacher))
}

// CreateTeacher handles POST /teachers requests. Restricted to teachers.
func (h *UserHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTeacherRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	teacher, err := domain.NewTeacher(req.Username, req.Password, req.Email, req.FullName, req.NIP)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if req.Subject != "" {
		teacher.Subject = req.Subject
	}

	if err := h.userStore.CreateTeacher(r.Context(), teacher); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("teacher account created", slog.Int("teacher_id", teacher.ID))

	shared.RespondWithJSON(w, r, http.StatusCreated, teacherToResponse(teacher))
}

// UpdateTeacher handles PUT /teachers/{id} requests. Restricted to teachers.
func (h *UserHandler) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	existing, err := h.userStore.GetTeacherByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTeacherRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	existing.Email = req.Email
	existing.FullName = req.FullName
	existing.NIP = req.NIP
	existing.Subject = req.Subject
	if req.Password != "" {
		existing.Password = req.Password
	}

	if err := h.userStore.UpdateTeacher(r.Context(), existing); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("teacher account updated", slog.Int("teacher_id", existing.ID))

	shared.RespondWithJSON(w, r, http.StatusOK, teacherToResponse(existing))
}

// studentToResponse maps a student entity to its API representation.
func studentToResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		Username:       s.Username,
		Email:          s.Email,
		FullName:       s.FullName,
		NIM:            s.NIM,
		ClassName:      s.ClassName,
		CognitiveScore: s.CognitiveScore,
		ProjectIDs:     s.ProjectIDs,
	}
}

// teacherToResponse maps a teacher entity to its API representation.
func teacherToResponse(t *domain.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:       t.ID,
		Username: t.Username,
		Email:    t.Email,
		FullName: t.FullName,
		NIP:      t.NIP,
		Subject:  t.Subject,
	}
}
